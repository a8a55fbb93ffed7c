package model

import "fmt"

// PocketStatus is the lifecycle state of a pocket.
type PocketStatus uint64

const (
	StatusActive PocketStatus = iota
	StatusPaused
	StatusClosed
	StatusWithdrawn
)

func (s PocketStatus) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusPaused:
		return "PAUSED"
	case StatusClosed:
		return "CLOSED"
	case StatusWithdrawn:
		return "WITHDRAWN"
	default:
		return fmt.Sprintf("PocketStatus(%d)", uint64(s))
	}
}

// CanTransition reports whether the on-chain program permits moving a pocket
// from one status to another. The lifecycle is strictly forward: pause and
// restart toggle between active and paused, closing is terminal except for
// withdrawal, and nothing leaves the withdrawn state.
func CanTransition(from, to PocketStatus) bool {
	switch from {
	case StatusActive:
		return to == StatusPaused || to == StatusClosed
	case StatusPaused:
		return to == StatusActive || to == StatusClosed
	case StatusClosed:
		return to == StatusWithdrawn
	default:
		return false
	}
}

// AMM identifies the swap venue the program routes through.
type AMM uint64

const (
	AMMPancakeSwap AMM = iota
)

// OpenPositionOperator is the comparison applied to the open-position
// condition thresholds.
type OpenPositionOperator uint64

const (
	OperatorUnset OpenPositionOperator = iota
	OperatorEQ
	OperatorNEQ
	OperatorGT
	OperatorGTE
	OperatorLT
	OperatorLTE
	OperatorBetween
	OperatorNotBetween
)

// StopConditionStoppedWith tags how a stop-loss or take-profit threshold is
// interpreted.
type StopConditionStoppedWith uint64

const (
	StoppedWithUnset StopConditionStoppedWith = iota
	StoppedWithPrice
	StoppedWithPortfolioValueDiff
	StoppedWithPortfolioPercentDiff
)

// AutoCloseConditionClosedWith tags which metric an auto-close condition
// watches.
type AutoCloseConditionClosedWith uint64

const (
	ClosedWithEndTime AutoCloseConditionClosedWith = iota
	ClosedWithBatchAmount
	ClosedWithSpentBaseAmount
	ClosedWithReceivedTargetAmount
)

// enumMax holds the highest valid code per enum. The transformer and the
// payload builder share these tables so the two directions cannot drift.
const (
	maxPocketStatus = uint64(StatusWithdrawn)
	maxAMM          = uint64(AMMPancakeSwap)
	maxOperator     = uint64(OperatorNotBetween)
	maxStoppedWith  = uint64(StoppedWithPortfolioPercentDiff)
	maxClosedWith   = uint64(ClosedWithReceivedTargetAmount)
)

// EventName identifies one field of the on-chain event manager resource.
type EventName string

const (
	EventUpgrade                  EventName = "upgrade"
	EventUpdateAllowedAdmin       EventName = "update_allowed_admin"
	EventUpdateAllowedOperator    EventName = "update_allowed_operator"
	EventUpdateAllowedTarget      EventName = "update_allowed_target"
	EventCreatePocket             EventName = "create_pocket"
	EventUpdatePocket             EventName = "update_pocket"
	EventUpdatePocketStatus       EventName = "update_pocket_status"
	EventUpdateTradingStats       EventName = "update_trading_stats"
	EventUpdateClosePositionStats EventName = "update_close_position_stats"
	EventUpdateDepositStats       EventName = "update_deposit_stats"
	EventUpdateWithdrawalStats    EventName = "update_withdrawal_stats"
)

// EventNames lists every known event stream field.
func EventNames() []EventName {
	return []EventName{
		EventUpgrade,
		EventUpdateAllowedAdmin,
		EventUpdateAllowedOperator,
		EventUpdateAllowedTarget,
		EventCreatePocket,
		EventUpdatePocket,
		EventUpdatePocketStatus,
		EventUpdateTradingStats,
		EventUpdateClosePositionStats,
		EventUpdateDepositStats,
		EventUpdateWithdrawalStats,
	}
}

// EventReason is the free-form cause string carried by pocket events.
type EventReason string

const (
	ReasonOperatorStoppedLoss      EventReason = "OPERATOR_STOPPED_LOSS"
	ReasonOperatorTookProfit       EventReason = "OPERATOR_TOOK_PROFIT"
	ReasonOperatorStopReached      EventReason = "OPERATOR_CLOSED_POCKET_DUE_TO_STOP_CONDITION_REACHED"
	ReasonOperatorMadeSwap         EventReason = "OPERATOR_MADE_SWAP"
	ReasonOperatorConditionReached EventReason = "OPERATOR_CLOSED_POCKET_DUE_TO_CONDITION_REACHED"
	ReasonUserClosedPosition       EventReason = "USER_CLOSED_POSITION"
	ReasonUserClosedPocket         EventReason = "USER_CLOSED_POCKET"
	ReasonUserCreatedPocket        EventReason = "USER_CREATED_POCKET"
	ReasonUserUpdatedPocket        EventReason = "USER_UPDATED_POCKET"
	ReasonUserDepositedAsset       EventReason = "USER_DEPOSITED_ASSET"
	ReasonUserWithdrewAssets       EventReason = "USER_WITHDREW_ASSETS"
	ReasonUserPausedPocket         EventReason = "USER_PAUSED_POCKET"
	ReasonUserRestartedPocket      EventReason = "USER_RESTARTED_POCKET"
)
