// Package tracer is a small tracing facade over OpenTelemetry.
//
// Services start spans around store lookups and supplement loading:
//
//	ctx, span := t.Start(ctx, tracer.SpanAccountLoad, tracer.String(tracer.AttrAccountID, accountID.String()))
//	defer func() { span.End(err) }()
//
// NoopTracer serves tests and deployments without an exporter.
package tracer

import (
	"context"
	"time"
)

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End completes the span. A non-nil err marks it failed.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration records value in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanAccountLoad              = "account.load"
	SpanAccountAddress           = "account.address"
	SpanAccountSources           = "account.sources"
	SpanClientDeviceRegister     = "client_device.register"
	SpanInstitutionLoad          = "institution.load"
	SpanTopicCenterLoad          = "topic_center.load"
	SpanPatientOrderLoad         = "patient_order.load"
	SpanPatientOrderSupplement   = "patient_order.supplement"
	SpanPatientOrderEncounters   = "patient_order.encounters"
	SpanPatientOrderAutocomplete = "patient_order.autocomplete"
	SpanAppointmentLoad          = "appointment.load"
	SpanScreeningFlowVersionLoad = "screening_flow_version.load"
	SpanStudyCheckIns            = "study.check_ins"
	SpanStudyFileUpload          = "study.file_upload"
	SpanCareResourceLoad         = "care_resource.load"
)

// Attribute keys.
const (
	AttrAccountID              = "account.id"
	AttrInstitutionID          = "institution.id"
	AttrPatientOrderID         = "patient_order.id"
	AttrTopicCenterID          = "topic_center.id"
	AttrSupplement             = "supplement"
	AttrCacheHit               = "cache.hit"
	AttrCount                  = "count"
	AttrAppointmentID          = "appointment.id"
	AttrStudyID                = "study.id"
	AttrScreeningFlowVersionID = "screening_flow_version.id"
	AttrCareResourceID         = "care_resource.id"
)

// Event names.
const (
	EventPHIDisclosed = "phi.disclosed"
)
