package core

import "sync"

type EventContext struct {
	Type SystemEventCode
	Data interface{}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// Resized/resolution changed from the OS.
	/* Context usage:
	 * [2]uint32{width, height} := data.Data
	 */
	EVENT_CODE_RESIZED SystemEventCode = 0x08

	// The scene configuration was reloaded from disk.
	/* Context usage:
	 * cfg := data.Data.(*config.Config)
	 */
	EVENT_CODE_CONFIG_RELOADED SystemEventCode = 0x10

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// Should return true if handled.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

var (
	eventMu    sync.Mutex
	registered = map[SystemEventCode][]registeredEvent{}
)

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listeners will not be registered again and will cause this to return false.
 * @param code The event code to listen for.
 * @param listener The listener instance. Can be nil.
 * @param onEvent The callback to be invoked when the event code is fired.
 */
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	eventMu.Lock()
	defer eventMu.Unlock()

	for _, e := range registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	registered[code] = append(registered[code], registeredEvent{listener: listener, callback: onEvent})
	return true
}

// EventUnregister stops listener from receiving code. Returns false when no
// registration matched.
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	eventMu.Lock()
	defer eventMu.Unlock()

	events := registered[code]
	for i, e := range events {
		if e.listener == listener {
			registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 */
func EventFire(context EventContext) bool {
	eventMu.Lock()
	events := append([]registeredEvent(nil), registered[context.Type]...)
	eventMu.Unlock()

	for _, e := range events {
		if e.callback(context) {
			return true
		}
	}
	return false
}

// EventShutdown drops every registration.
func EventShutdown() {
	eventMu.Lock()
	defer eventMu.Unlock()
	registered = map[SystemEventCode][]registeredEvent{}
}
