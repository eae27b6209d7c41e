package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies a pipeline failure. Codes are string-based so they
// serialize naturally into logs and error payloads.
type FailureKind string

const (
	KindInvalidInput          FailureKind = "INVALID_INPUT"
	KindUnknownFont           FailureKind = "UNKNOWN_FONT"
	KindMissingFontAsset      FailureKind = "MISSING_FONT_ASSET"
	KindEngineExecutionFailed FailureKind = "ENGINE_EXECUTION_FAILED"
	KindArtifactNotProduced   FailureKind = "ARTIFACT_NOT_PRODUCED"
	KindUnhandledFault        FailureKind = "UNHANDLED_FAULT"
)

// ClientFault reports whether the failure was caused by the request rather
// than by the server or the rendering engine.
func (k FailureKind) ClientFault() bool {
	return k == KindInvalidInput || k == KindUnknownFont
}

// PipelineError is the typed failure every pipeline stage returns. Message is
// safe to show to the caller; Detail carries diagnostics (engine stderr,
// filesystem errors) whose exposure is decided per kind by the handler.
type PipelineError struct {
	Kind    FailureKind
	Message string
	Detail  string
}

func (e *PipelineError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewPipelineError(kind FailureKind, message, detail string) *PipelineError {
	return &PipelineError{Kind: kind, Message: message, Detail: detail}
}

// KindOf extracts the failure kind from err, defaulting to UNHANDLED_FAULT
// for anything that is not a PipelineError.
func KindOf(err error) FailureKind {
	var perr *PipelineError
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindUnhandledFault
}
