package event

import (
	"encoding/json"
	"fmt"
	"reflect"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct (e.g., &ImpactPayload{})
// Pass nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// Name returns the registered name, empty when unknown
func Name(et EventType) string {
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

func init() {
	RegisterType("chunk", EventChunkMaterialized, &ChunkPayload{})
	RegisterType("spawn", EventEntitySpawned, &EntityPayload{})
	RegisterType("expire", EventEntityExpired, &EntityPayload{})
	RegisterType("bullet", EventBulletFired, &ShotPayload{})
	RegisterType("rocket", EventRocketLaunched, &ShotPayload{})
	RegisterType("impact", EventImpact, &ImpactPayload{})
	RegisterType("gas", EventGasCollected, &PointPayload{})
	RegisterType("gas_empty", EventGasEmpty, nil)
	RegisterType("milestone", EventAltitudeMilestone, &AltitudePayload{})
	RegisterType("wind", EventWindParticle, &WindPayload{})
	RegisterType("crash", EventCrash, &AltitudePayload{})
	RegisterType("out_of_bounds", EventOutOfBounds, &AltitudePayload{})
}

// wireEvent is the JSON envelope used by spectators and replays
type wireEvent struct {
	Type    string          `json:"type"`
	Tick    int64           `json:"tick"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Marshal encodes an event as {"type", "tick", "payload"}
func Marshal(ev GameEvent) ([]byte, error) {
	name := Name(ev.Type)
	if name == "" {
		return nil, fmt.Errorf("event: unregistered type %d", ev.Type)
	}
	w := wireEvent{Type: name, Tick: ev.Tick}
	if ev.Payload != nil {
		raw, err := json.Marshal(ev.Payload)
		if err != nil {
			return nil, fmt.Errorf("event: marshal %s payload: %w", name, err)
		}
		w.Payload = raw
	}
	return json.Marshal(w)
}

// Unmarshal decodes an envelope produced by Marshal
// The payload is restored as a pointer to its registered struct
func Unmarshal(data []byte) (GameEvent, error) {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return GameEvent{}, fmt.Errorf("event: decode envelope: %w", err)
	}
	et, ok := GetEventType(w.Type)
	if !ok {
		return GameEvent{}, fmt.Errorf("event: unknown type %q", w.Type)
	}
	ev := GameEvent{Type: et, Tick: w.Tick}
	if p := NewPayloadStruct(et); p != nil && len(w.Payload) > 0 {
		if err := json.Unmarshal(w.Payload, p); err != nil {
			return GameEvent{}, fmt.Errorf("event: decode %s payload: %w", w.Type, err)
		}
		ev.Payload = p
	}
	return ev, nil
}
