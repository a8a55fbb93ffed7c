package builder

import (
	"encoding/hex"
	"fmt"
	"strings"

	"hamsterpocket/internal/bcs"
	"hamsterpocket/internal/chain"
)

// moduleName is the program's module under its resource account.
const moduleName = "chef"

// resourceAccountModule hosts the genesis-level resource account factory.
const resourceAccountModule = "resource_account"

// Builder produces payloads for the program's entry and view functions. The
// program address is bound once at construction; before the program is
// deployed only CreateResourceAccount is usable.
type Builder struct {
	program    chain.AccountAddress
	programSet bool
}

// New binds the builder to a deployed program (resource account) address.
func New(programAddress string) (*Builder, error) {
	addr, err := chain.ParseAddress(programAddress)
	if err != nil {
		return nil, fmt.Errorf("program address: %w", err)
	}
	return &Builder{program: addr, programSet: true}, nil
}

// NewUndeployed creates a builder with no program address. Operations that
// target the program fail with a ConfigurationError until the address is
// known.
func NewUndeployed() *Builder {
	return &Builder{}
}

// ProgramAddress returns the bound program address, if set.
func (b *Builder) ProgramAddress() (chain.AccountAddress, bool) {
	return b.program, b.programSet
}

func (b *Builder) entry(function string, typeArgs []chain.StructTag, args [][]byte) (EntryFunctionPayload, error) {
	if !b.programSet {
		return EntryFunctionPayload{}, &ConfigurationError{Operation: function}
	}
	return EntryFunctionPayload{
		ModuleAddress: b.program,
		ModuleName:    moduleName,
		Function:      function,
		TypeArgs:      typeArgs,
		Args:          args,
	}, nil
}

func (b *Builder) view(function string, typeArgs []string, args []interface{}) (ViewPayload, error) {
	if !b.programSet {
		return ViewPayload{}, &ConfigurationError{Operation: function}
	}
	return ViewPayload{
		Function: fmt.Sprintf("%s::%s::%s", b.program.Hex(), moduleName, function),
		TypeArgs: typeArgs,
		Args:     args,
	}, nil
}

// coinPair parses base and target coin types for use as type arguments.
func coinPair(baseCoinType, targetCoinType string) ([]chain.StructTag, error) {
	base, err := chain.ParseStructTag(baseCoinType)
	if err != nil {
		return nil, err
	}
	target, err := chain.ParseStructTag(targetCoinType)
	if err != nil {
		return nil, err
	}
	return []chain.StructTag{base, target}, nil
}

// Condition tuples travel as vectors of same-width u64 values: the tag enum
// first, then the threshold value(s). The auto-close list is flattened into
// one contiguous vector of (tag, value) pairs, not a vector of vectors.

func openPositionVector(c OpenPositionConditionParams) []uint64 {
	return []uint64{uint64(c.Operator), c.ValueX, c.ValueY}
}

func stopConditionVector(c StopConditionParams) []uint64 {
	return []uint64{uint64(c.StoppedWith), c.Value}
}

func flattenAutoCloseConditions(conditions []AutoCloseConditionParams) []uint64 {
	out := make([]uint64, 0, len(conditions)*2)
	for _, c := range conditions {
		out = append(out, uint64(c.ClosedWith), c.Value)
	}
	return out
}

func pocketConfigArgs(id string, amm *uint64, startAt, frequency, batchVolume uint64,
	open OpenPositionConditionParams, takeProfit, stopLoss StopConditionParams,
	autoClose []AutoCloseConditionParams) [][]byte {

	args := [][]byte{bcs.String(id)}
	if amm != nil {
		args = append(args, bcs.U64(*amm))
	}
	args = append(args,
		bcs.U64(startAt),
		bcs.U64(frequency),
		bcs.U64(batchVolume),
		bcs.U64Vector(openPositionVector(open)),
		bcs.U64Vector(stopConditionVector(takeProfit)),
		bcs.U64Vector(stopConditionVector(stopLoss)),
		bcs.U64Vector(flattenAutoCloseConditions(autoClose)),
	)
	return args
}

// CreatePocket shapes a create_pocket call.
func (b *Builder) CreatePocket(p CreatePocketParams) (EntryFunctionPayload, error) {
	typeArgs, err := coinPair(p.BaseCoinType, p.TargetCoinType)
	if err != nil {
		return EntryFunctionPayload{}, err
	}
	amm := uint64(p.AMM)
	args := pocketConfigArgs(p.ID, &amm, p.StartAt, p.Frequency, p.BatchVolume,
		p.OpenPositionCondition, p.TakeProfitCondition, p.StopLossCondition, p.AutoCloseConditions)
	return b.entry("create_pocket", typeArgs, args)
}

// CreateAndDepositToPocket shapes a combined create_and_deposit_to_pocket
// call.
func (b *Builder) CreateAndDepositToPocket(p CreatePocketParams, depositAmount uint64) (EntryFunctionPayload, error) {
	typeArgs, err := coinPair(p.BaseCoinType, p.TargetCoinType)
	if err != nil {
		return EntryFunctionPayload{}, err
	}
	amm := uint64(p.AMM)
	args := pocketConfigArgs(p.ID, &amm, p.StartAt, p.Frequency, p.BatchVolume,
		p.OpenPositionCondition, p.TakeProfitCondition, p.StopLossCondition, p.AutoCloseConditions)
	args = append(args, bcs.U64(depositAmount))
	return b.entry("create_and_deposit_to_pocket", typeArgs, args)
}

// UpdatePocket shapes an update_pocket call.
func (b *Builder) UpdatePocket(p UpdatePocketParams) (EntryFunctionPayload, error) {
	args := pocketConfigArgs(p.ID, nil, p.StartAt, p.Frequency, p.BatchVolume,
		p.OpenPositionCondition, p.TakeProfitCondition, p.StopLossCondition, p.AutoCloseConditions)
	return b.entry("update_pocket", nil, args)
}

// PausePocket shapes a pause_pocket call.
func (b *Builder) PausePocket(id string) (EntryFunctionPayload, error) {
	return b.entry("pause_pocket", nil, [][]byte{bcs.String(id)})
}

// RestartPocket shapes a restart_pocket call.
func (b *Builder) RestartPocket(id string) (EntryFunctionPayload, error) {
	return b.entry("restart_pocket", nil, [][]byte{bcs.String(id)})
}

// ClosePocket shapes a close_pocket call.
func (b *Builder) ClosePocket(id string) (EntryFunctionPayload, error) {
	return b.entry("close_pocket", nil, [][]byte{bcs.String(id)})
}

// Deposit shapes a deposit call. The deposited coin travels as a type
// argument.
func (b *Builder) Deposit(p DepositParams) (EntryFunctionPayload, error) {
	coin, err := chain.ParseStructTag(p.CoinType)
	if err != nil {
		return EntryFunctionPayload{}, err
	}
	args := [][]byte{bcs.String(p.ID), bcs.U64(p.Amount)}
	return b.entry("deposit", []chain.StructTag{coin}, args)
}

// Withdraw shapes a withdraw call draining both vault sides.
func (b *Builder) Withdraw(p WithdrawParams) (EntryFunctionPayload, error) {
	typeArgs, err := coinPair(p.BaseCoinType, p.TargetCoinType)
	if err != nil {
		return EntryFunctionPayload{}, err
	}
	return b.entry("withdraw", typeArgs, [][]byte{bcs.String(p.ID)})
}

// CloseAndWithdrawPocket shapes the combined close_and_withdraw_pocket call.
func (b *Builder) CloseAndWithdrawPocket(p WithdrawParams) (EntryFunctionPayload, error) {
	typeArgs, err := coinPair(p.BaseCoinType, p.TargetCoinType)
	if err != nil {
		return EntryFunctionPayload{}, err
	}
	return b.entry("close_and_withdraw_pocket", typeArgs, [][]byte{bcs.String(p.ID)})
}

func (b *Builder) trading(function string, p TradingParams) (EntryFunctionPayload, error) {
	typeArgs, err := coinPair(p.BaseCoinType, p.TargetCoinType)
	if err != nil {
		return EntryFunctionPayload{}, err
	}
	args := [][]byte{bcs.String(p.ID), bcs.U64(p.MinAmountOut)}
	return b.entry(function, typeArgs, args)
}

// OperatorMakeDCASwap shapes an operator_make_dca_swap call.
func (b *Builder) OperatorMakeDCASwap(p TradingParams) (EntryFunctionPayload, error) {
	return b.trading("operator_make_dca_swap", p)
}

// OperatorClosePosition shapes an operator_close_position call.
func (b *Builder) OperatorClosePosition(p TradingParams) (EntryFunctionPayload, error) {
	return b.trading("operator_close_position", p)
}

// ClosePosition shapes a close_position call.
func (b *Builder) ClosePosition(p TradingParams) (EntryFunctionPayload, error) {
	return b.trading("close_position", p)
}

// ClosePositionAndWithdraw shapes a close_position_and_withdraw call.
func (b *Builder) ClosePositionAndWithdraw(p TradingParams) (EntryFunctionPayload, error) {
	return b.trading("close_position_and_withdraw", p)
}

// SetOperator shapes a set_operator call. The target address travels as its
// raw byte form, length-prefixed.
func (b *Builder) SetOperator(p SetOperatorParams) (EntryFunctionPayload, error) {
	target, err := chain.ParseAddress(p.Target)
	if err != nil {
		return EntryFunctionPayload{}, err
	}
	args := [][]byte{bcs.Bytes(target.Bytes()), bcs.Bool(p.Value)}
	return b.entry("set_operator", nil, args)
}

// TransferAdmin shapes a transfer_admin call.
func (b *Builder) TransferAdmin(p TransferAdminParams) (EntryFunctionPayload, error) {
	target, err := chain.ParseAddress(p.Target)
	if err != nil {
		return EntryFunctionPayload{}, err
	}
	return b.entry("transfer_admin", nil, [][]byte{bcs.Bytes(target.Bytes())})
}

// SetInteractiveTarget shapes a set_interactive_target call.
func (b *Builder) SetInteractiveTarget(p SetInteractiveTargetParams) (EntryFunctionPayload, error) {
	args := [][]byte{bcs.String(p.Target), bcs.Bool(p.Value)}
	return b.entry("set_interactive_target", nil, args)
}

// Upgrade shapes a program upgrade call from pre-built package metadata and
// module bytecode.
func (b *Builder) Upgrade(p UpgradeParams) (EntryFunctionPayload, error) {
	metadata, err := decodeHex(p.SerializedMetadata)
	if err != nil {
		return EntryFunctionPayload{}, fmt.Errorf("upgrade metadata: %w", err)
	}

	modules := make([][]byte, 0, len(p.Code))
	for i, encoded := range p.Code {
		module, err := decodeHex(encoded)
		if err != nil {
			return EntryFunctionPayload{}, fmt.Errorf("upgrade module %d: %w", i, err)
		}
		modules = append(modules, module)
	}

	args := [][]byte{bcs.Bytes(metadata), bcs.BytesVector(modules)}
	return b.entry("upgrade", nil, args)
}

// CreateResourceAccount shapes the genesis-level
// resource_account::create_resource_account_and_fund call. It is legal
// before the program exists.
func (b *Builder) CreateResourceAccount(p CreateResourceAccountParams) (EntryFunctionPayload, error) {
	owner, err := chain.ParseAddress(p.OwnerAddress)
	if err != nil {
		return EntryFunctionPayload{}, err
	}
	args := [][]byte{
		bcs.Bytes([]byte(p.Seed)),
		bcs.Bytes(owner.Bytes()),
		bcs.U64(p.AmountToFund),
	}
	return EntryFunctionPayload{
		ModuleAddress: chain.AddressOne,
		ModuleName:    resourceAccountModule,
		Function:      "create_resource_account_and_fund",
		Args:          args,
	}, nil
}

// GetPocket shapes the get_pocket view. The id travels as the hex form of
// its UTF-8 bytes.
func (b *Builder) GetPocket(id string) (ViewPayload, error) {
	return b.view("get_pocket", []string{}, []interface{}{hexString(id)})
}

// GetMultiplePockets shapes the get_multiple_pockets view.
func (b *Builder) GetMultiplePockets(ids []string) (ViewPayload, error) {
	encoded := make([]string, 0, len(ids))
	for _, id := range ids {
		encoded = append(encoded, hexString(id))
	}
	return b.view("get_multiple_pockets", []string{}, []interface{}{encoded})
}

// IsAdmin shapes the is_admin view.
func (b *Builder) IsAdmin(address string) (ViewPayload, error) {
	addr, err := chain.ParseAddress(address)
	if err != nil {
		return ViewPayload{}, err
	}
	return b.view("is_admin", []string{}, []interface{}{addr.Hex()})
}

// IsOperator shapes the is_operator view.
func (b *Builder) IsOperator(address string) (ViewPayload, error) {
	addr, err := chain.ParseAddress(address)
	if err != nil {
		return ViewPayload{}, err
	}
	return b.view("is_operator", []string{}, []interface{}{addr.Hex()})
}

// IsAllowedTarget shapes the is_allowed_target view.
func (b *Builder) IsAllowedTarget(target string) (ViewPayload, error) {
	return b.view("is_allowed_target", []string{}, []interface{}{hexString(target)})
}

// GetDelegatedVaultAddress shapes the get_delegated_vault_address view.
func (b *Builder) GetDelegatedVaultAddress(owner string) (ViewPayload, error) {
	addr, err := chain.ParseAddress(owner)
	if err != nil {
		return ViewPayload{}, err
	}
	return b.view("get_delegated_vault_address", []string{}, []interface{}{addr.Hex()})
}

// GetQuote shapes the get_quote view for a coin pair.
func (b *Builder) GetQuote(p GetQuoteParams) (ViewPayload, error) {
	typeArgs, err := coinPair(p.BaseCoinType, p.TargetCoinType)
	if err != nil {
		return ViewPayload{}, err
	}
	return b.view("get_quote",
		[]string{typeArgs[0].String(), typeArgs[1].String()},
		[]interface{}{fmt.Sprintf("%d", p.AmountIn)})
}

func hexString(s string) string {
	return "0x" + hex.EncodeToString([]byte(s))
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
