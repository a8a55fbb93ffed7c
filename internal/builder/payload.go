// Package builder maps typed transaction intents onto the fixed table of
// on-chain entry and view functions, producing canonical binary-encoded
// call payloads. It performs no network I/O.
package builder

import (
	"fmt"

	"hamsterpocket/internal/chain"
)

// EntryFunctionPayload is a fully shaped entry-function call: target module,
// function name, type arguments, and pre-encoded binary arguments in call
// order.
type EntryFunctionPayload struct {
	ModuleAddress chain.AccountAddress
	ModuleName    string
	Function      string
	TypeArgs      []chain.StructTag
	Args          [][]byte
}

// ViewPayload is a read-only call. Arguments stay in their canonical
// string/hex JSON form because the view endpoint accepts JSON, not raw
// bytes.
type ViewPayload struct {
	Function string
	TypeArgs []string
	Args     []interface{}
}

// ConfigurationError reports an operation that needs the deployed program
// address before it is known.
type ConfigurationError struct {
	Operation string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s requires the program address, which is not configured yet", e.Operation)
}
