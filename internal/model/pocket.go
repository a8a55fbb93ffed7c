package model

import "math/big"

// OpenPositionCondition gates when the pocket may start buying.
type OpenPositionCondition struct {
	Operator OpenPositionOperator
	ValueX   *big.Int
	ValueY   *big.Int
}

// StopCondition is a stop-loss or take-profit trigger.
type StopCondition struct {
	StoppedWith StopConditionStoppedWith
	Value       *big.Int
}

// AutoCloseCondition force-closes a pocket once its metric crosses Value.
// Any single satisfied condition in the list closes the pocket.
type AutoCloseCondition struct {
	ClosedWith AutoCloseConditionClosedWith
	Value      *big.Int
}

// Pocket is the typed projection of an on-chain recurring-investment
// position. The authoritative copy lives on-chain; instances are built fresh
// from a view call and never mutated locally.
type Pocket struct {
	ID    string
	Owner string

	BaseCoinType      string
	TargetCoinType    string
	BaseCoinBalance   *big.Int
	TargetCoinBalance *big.Int

	AMM    AMM
	Status PocketStatus

	StartAt                  uint64
	Frequency                uint64
	NextScheduledExecutionAt uint64
	BatchVolume              *big.Int
	ExecutedBatchAmount      uint64

	OpenPositionCondition OpenPositionCondition
	StopLossCondition     StopCondition
	TakeProfitCondition   StopCondition
	AutoCloseConditions   []AutoCloseCondition

	TotalDepositedBaseAmount          *big.Int
	TotalSwappedBaseAmount            *big.Int
	TotalReceivedTargetAmount         *big.Int
	TotalReceivedFundInBaseAmount     *big.Int
	TotalClosedPositionInTargetAmount *big.Int
}
