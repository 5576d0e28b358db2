package assertion_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/domainnotify/pkg/assertion"
	"github.com/dmitrymomot/domainnotify/pkg/notification"
)

func ExampleIsSatisfiedBy() {
	sink := notification.SinkFunc(func(_ context.Context, n notification.Notification) error {
		fmt.Println(n)
		return nil
	})

	ok := assertion.IsSatisfiedBy(context.Background(), sink,
		assertion.Length("Jo", 3, 50, "Nome deve ter entre 3 e 50 caracteres"),
		assertion.ValidEmail("joao@example.com", "E-mail inválido"),
		assertion.ValidCPF("943.754.516-54", "CPF inválido."),
	)
	fmt.Println(ok)

	// Output:
	// AssertArgumentLength: Nome deve ter entre 3 e 50 caracteres
	// AssertCPFIsInvalid: CPF inválido.
	// false
}

func ExampleValidCNPJ() {
	fmt.Println(assertion.ValidCNPJ("11.222.333/0001-81", "CNPJ inválido.") == nil)
	fmt.Println(assertion.ValidCNPJ("11.222.333/0001-80", "CNPJ inválido."))

	// Output:
	// true
	// AssertCNPJIsInvalid: CNPJ inválido.
}
