// embed.go 声明随程序打包的数据文件
// //go:embed 只能引用本包目录下的路径，所以该文件放在项目根目录
package main

import "embed"

//go:embed data/scene.yaml data/models
var dataFS embed.FS
