package taxes

import "fmt"

// TaxError is the closed set of failures Calculate can return. The marker
// method seals the set: every variant lives in this package and every
// switch over the set is expected to handle all of them. The webhook
// handler panics on a variant it does not recognize instead of letting it
// fall through.
type TaxError interface {
	error
	taxError()
}

// ExpectedIncompletePayloadError: the payload is missing fields required
// to compute taxes. Mapped to 400.
type ExpectedIncompletePayloadError struct {
	Missing string
}

func (e *ExpectedIncompletePayloadError) Error() string {
	return fmt.Sprintf("taxes: payload incomplete: missing %s", e.Missing)
}

func (*ExpectedIncompletePayloadError) taxError() {}

// ConfigBrokenError: the tenant configuration is structurally invalid or
// the provider rejected its credentials. Mapped to 500.
type ConfigBrokenError struct {
	Cause error
}

func (e *ConfigBrokenError) Error() string {
	return fmt.Sprintf("taxes: tenant configuration is broken: %v", e.Cause)
}

func (e *ConfigBrokenError) Unwrap() error { return e.Cause }

func (*ConfigBrokenError) taxError() {}

// FailedCalculatingTaxesError: the provider rejected the computation with
// a known, recoverable domain failure. Mapped to 500.
type FailedCalculatingTaxesError struct {
	Cause error
}

func (e *FailedCalculatingTaxesError) Error() string {
	return fmt.Sprintf("taxes: provider failed to calculate taxes: %v", e.Cause)
}

func (e *FailedCalculatingTaxesError) Unwrap() error { return e.Cause }

func (*FailedCalculatingTaxesError) taxError() {}

// UnhandledError: anything unexpected. Always reported to the error
// tracker before being returned. Mapped to 500.
type UnhandledError struct {
	Cause error
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("taxes: unhandled error: %v", e.Cause)
}

func (e *UnhandledError) Unwrap() error { return e.Cause }

func (*UnhandledError) taxError() {}
