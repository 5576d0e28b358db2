// Package assertion provides domain assertions that report problems as
// notifications instead of errors or panics.
//
// Every assertion is a pure function of its inputs. It returns nil when the
// value satisfies the rule and a *notification.Notification carrying a fixed
// code and the caller supplied message otherwise:
//
//	ok := assertion.IsSatisfiedBy(ctx, sink,
//	    assertion.Length(customer.Name, 3, 100, "Name must have 3 to 100 characters"),
//	    assertion.ValidEmail(customer.Email, "E-mail inválido"),
//	    assertion.ValidCPF(customer.Document, "CPF inválido."),
//	)
//	if !ok {
//	    return
//	}
//
// IsSatisfiedBy forwards each failing notification to the sink exactly once
// in argument order and reports whether none failed. Check is the error
// returning variant for callers that do not need a sink.
//
// # Families
//
//   - strings: Length, NotEmpty, Equals, Matches, RegexMatch
//   - values: NotNil, IsNil, True, UUIDNotEmpty
//   - comparisons: GreaterThan, GreaterOrEqual, Between and their Date variants
//   - formats: ValidEmail, ValidURL
//   - Brazilian documents: ValidCPF, ValidCNPJ
//
// Between is strictly ordered for numbers (min <= value <= max) while
// DateBetween accepts its bounds in either order.
//
// Malformed input, including an invalid regular expression, is reported as
// an ordinary failed assertion.
package assertion
