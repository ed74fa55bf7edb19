package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for registry events.
var (
	SignalRegistryCreated = capitan.NewSignal("roster.registry.created", "Registry constructed")
	SignalEntryDropped    = capitan.NewSignal("roster.entry.dropped", "Definition entry filtered out")
	SignalAssertFailed    = capitan.NewSignal("roster.assert.failed", "Value rejected by assert")
	SignalCoerceDefaulted = capitan.NewSignal("roster.coerce.defaulted", "Coerce fell back to default")
	SignalDecodeComplete  = capitan.NewSignal("roster.decode.complete", "Decode operation finished")
	SignalEncodeComplete  = capitan.NewSignal("roster.encode.complete", "Encode operation finished")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyShape       = capitan.NewStringKey("shape")
	KeyEntryName   = capitan.NewStringKey("entry_name")
	KeyValueType   = capitan.NewStringKey("value_type")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDropped     = capitan.NewIntKey("dropped")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitRegistryCreated emits an event when the factory finishes a registry.
func emitRegistryCreated(ctx context.Context, typeName string, shape Shape, size, dropped int) {
	capitan.Emit(ctx, SignalRegistryCreated,
		KeyTypeName.Field(typeName),
		KeyShape.Field(string(shape)),
		KeySize.Field(size),
		KeyDropped.Field(dropped),
	)
}

// emitEntryDropped emits an event for a definition entry the shape does not admit.
func emitEntryDropped(ctx context.Context, typeName, entryName string, value any) {
	capitan.Emit(ctx, SignalEntryDropped,
		KeyTypeName.Field(typeName),
		KeyEntryName.Field(entryName),
		KeyValueType.Field(fmt.Sprintf("%T", value)),
	)
}

// emitAssertFailed emits an error event when assert rejects a value.
func emitAssertFailed(ctx context.Context, typeName string, value any, err error) {
	capitan.Error(ctx, SignalAssertFailed,
		KeyTypeName.Field(typeName),
		KeyValueType.Field(fmt.Sprintf("%T", value)),
		KeyError.Field(err),
	)
}

// emitCoerceDefaulted emits an event when coerce substitutes the default value.
func emitCoerceDefaulted(ctx context.Context, typeName string, value any) {
	capitan.Emit(ctx, SignalCoerceDefaulted,
		KeyTypeName.Field(typeName),
		KeyValueType.Field(fmt.Sprintf("%T", value)),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}
