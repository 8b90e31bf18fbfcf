package requirements_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/requirements"
)

type bankAccount struct {
	owner   string
	balance int64
}

// withdraw validates its arguments as preconditions and its result as a
// postcondition.
func (a *bankAccount) withdraw(v *requirements.Validators, amount int64) {
	requirements.Integer(v.RequireThat("amount"), amount).
		IsPositive().
		IsLessThanOrEqualToNamed(a.balance, "balance")

	a.balance -= amount

	requirements.Integer(v.AssertThat("balance"), a.balance).IsNotNegative()
}

// Example_preconditions demonstrates RequireThat failing fast
func Example_preconditions() {
	v := requirements.New()
	acct := &bankAccount{owner: "ann", balance: 100}

	defer func() {
		err := recover().(error)
		fmt.Println(errors.Is(err, requirements.ErrViolation))
		fmt.Println(err)
	}()
	acct.withdraw(v, 150)

	// Output:
	// true
	// "amount" must be less than or equal to "balance".
	// amount : 150
	// balance: 100
}

// Example_checkIf demonstrates collecting every failure of user input
func Example_checkIf() {
	v := requirements.New()

	username := requirements.String(v.CheckIf("username"), " bob").
		IsStripped().
		DoesNotContainWhitespace()
	username.Length().IsGreaterThanOrEqualTo(5)

	for _, msg := range username.Failures().Messages() {
		fmt.Println(msg)
		fmt.Println("--")
	}

	// Output:
	// "username" may not contain leading or trailing whitespace.
	// username: " bob"
	// --
	// "username" may not contain whitespace.
	// username: " bob"
	// --
	// "username" must contain at least 5 characters.
	// username     : " bob"
	// len(username): 4
	// --
}

// Example_nullValues demonstrates how absent values are reported
func Example_nullValues() {
	v := requirements.New()

	var price *float64
	err := requirements.FloatPtr(v.CheckIf("price"), price).IsNumber().IsPositive().Err()
	fmt.Println(err)

	// Output:
	// 3 validation failures:
	// 1. "price" may not be null
	// 2. "price" must be a well-defined number
	// 3. "price" must be positive
}

// Example_context demonstrates context lines shared by every failure
func Example_context() {
	v := requirements.New(requirements.WithContext("req-42", "request_id"))

	err := requirements.Slice(v.CheckIf("tags"), []string{"go", "go"}).
		DoesNotContainDuplicates().
		Err()
	fmt.Println(err)

	// Output:
	// "tags" may not contain any duplicate elements.
	// tags      : ["go","go"]
	// duplicates: ["go"]
	// request_id: "req-42"
}
