package builder

import "hamsterpocket/internal/model"

// OpenPositionConditionParams is the open-position trigger of a create or
// update intent.
type OpenPositionConditionParams struct {
	Operator model.OpenPositionOperator
	ValueX   uint64
	ValueY   uint64
}

// StopConditionParams is a stop-loss or take-profit trigger.
type StopConditionParams struct {
	StoppedWith model.StopConditionStoppedWith
	Value       uint64
}

// AutoCloseConditionParams is one auto-close trigger.
type AutoCloseConditionParams struct {
	ClosedWith model.AutoCloseConditionClosedWith
	Value      uint64
}

// CreatePocketParams carries everything create_pocket needs.
type CreatePocketParams struct {
	ID             string
	BaseCoinType   string
	TargetCoinType string
	AMM            model.AMM
	StartAt        uint64
	Frequency      uint64
	BatchVolume    uint64

	OpenPositionCondition OpenPositionConditionParams
	StopLossCondition     StopConditionParams
	TakeProfitCondition   StopConditionParams
	AutoCloseConditions   []AutoCloseConditionParams
}

// UpdatePocketParams carries everything update_pocket needs. Coin types are
// fixed at creation and cannot be updated.
type UpdatePocketParams struct {
	ID          string
	StartAt     uint64
	Frequency   uint64
	BatchVolume uint64

	OpenPositionCondition OpenPositionConditionParams
	StopLossCondition     StopConditionParams
	TakeProfitCondition   StopConditionParams
	AutoCloseConditions   []AutoCloseConditionParams
}

// DepositParams moves base funds into a pocket vault.
type DepositParams struct {
	ID       string
	CoinType string
	Amount   uint64
}

// WithdrawParams drains both vault sides of a closed pocket.
type WithdrawParams struct {
	ID             string
	BaseCoinType   string
	TargetCoinType string
}

// TradingParams drives the operator swap and position-close entry functions.
type TradingParams struct {
	ID             string
	BaseCoinType   string
	TargetCoinType string
	MinAmountOut   uint64
}

// SetOperatorParams toggles an address on the operator allow-list.
type SetOperatorParams struct {
	Target string
	Value  bool
}

// SetInteractiveTargetParams toggles a target on the interaction allow-list.
type SetInteractiveTargetParams struct {
	Target string
	Value  bool
}

// TransferAdminParams hands the admin role to another address.
type TransferAdminParams struct {
	Target string
}

// UpgradeParams carries a pre-built package upgrade: hex-encoded metadata
// and hex-encoded module bytecode.
type UpgradeParams struct {
	SerializedMetadata string
	Code               []string
}

// CreateResourceAccountParams derives and funds the program's resource
// account from a seed.
type CreateResourceAccountParams struct {
	Seed         string
	OwnerAddress string
	AmountToFund uint64
}

// GetQuoteParams asks the routed venue for a price quote.
type GetQuoteParams struct {
	BaseCoinType   string
	TargetCoinType string
	AmountIn       uint64
}
