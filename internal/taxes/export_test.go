package taxes

// unrecognizedTaxError exists to exercise the fail-loudly branch of the
// webhook response mapping from the outside: the error set is sealed, so
// an out-of-set variant can only be minted here.
type unrecognizedTaxError struct{}

func (*unrecognizedTaxError) Error() string { return "taxes: unrecognized variant" }

func (*unrecognizedTaxError) taxError() {}

func NewUnrecognizedTaxError() TaxError { return &unrecognizedTaxError{} }
