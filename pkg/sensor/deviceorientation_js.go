//go:build js && wasm

package sensor

import (
	"fmt"
	"log"

	"github.com/hack-pad/safejs"
)

// deviceOrientationSource 监听浏览器 window 上的 deviceorientation 事件
type deviceOrientationSource struct {
	queue    *ReadingQueue
	window   safejs.Value
	listener safejs.Func
}

// NewDeviceOrientationSource 在浏览器中注册 deviceorientation 监听器
//
// 事件回调运行在 JS 事件循环上，读数经 ReadingQueue 传回游戏循环。
// event.gamma 为 null（设备没有陀螺仪）时产生 HasGamma=false 的读数。
func NewDeviceOrientationSource() (OrientationSource, error) {
	window, err := safejs.Global().Get("window")
	if err != nil {
		return nil, fmt.Errorf("failed to get window: %w", err)
	}
	if window.IsUndefined() || window.IsNull() {
		return nil, ErrUnsupported
	}

	s := &deviceOrientationSource{
		queue:  NewReadingQueue(0),
		window: window,
	}

	listener, err := safejs.FuncOf(func(this safejs.Value, args []safejs.Value) any {
		s.queue.Push(readGamma(args))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orientation listener: %w", err)
	}
	s.listener = listener

	if _, err := window.Call("addEventListener", "deviceorientation", listener.Value()); err != nil {
		listener.Release()
		return nil, fmt.Errorf("failed to add deviceorientation listener: %w", err)
	}

	log.Printf("[Sensor] deviceorientation listener registered")
	return s, nil
}

// readGamma 从事件对象读取 gamma，任何读取失败都按“未报告”处理
func readGamma(args []safejs.Value) OrientationReading {
	if len(args) == 0 {
		return OrientationReading{}
	}
	gamma, err := args[0].Get("gamma")
	if err != nil || gamma.IsNull() || gamma.IsUndefined() {
		return OrientationReading{}
	}
	value, err := gamma.Float()
	if err != nil {
		return OrientationReading{}
	}
	return NewGammaReading(value)
}

// Poll 实现 OrientationSource
func (s *deviceOrientationSource) Poll() []OrientationReading {
	return s.queue.Drain()
}

// Dropped 实现 OverflowReporter
func (s *deviceOrientationSource) Dropped() int {
	return s.queue.Dropped()
}

// Close 移除监听器并释放回调
func (s *deviceOrientationSource) Close() error {
	_, err := s.window.Call("removeEventListener", "deviceorientation", s.listener.Value())
	s.listener.Release()
	if err != nil {
		return fmt.Errorf("failed to remove deviceorientation listener: %w", err)
	}
	return nil
}
