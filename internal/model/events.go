package model

import "math/big"

// PocketEvent is one decoded entry of the on-chain event stream, keyed by
// creation number and sequence number within its handle.
type PocketEvent struct {
	Name           EventName
	AccountAddress string
	CreationNumber uint64
	SequenceNumber uint64
	Version        uint64
	Data           interface{}
}

// UpgradeEvent records a program upgrade.
type UpgradeEvent struct {
	Actor     string
	Timestamp uint64
}

// UpdateAllowedAdminEvent records an admin allow-list change.
type UpdateAllowedAdminEvent struct {
	Actor     string
	Target    string
	Value     bool
	Timestamp uint64
}

// UpdateAllowedOperatorEvent records an operator allow-list change.
type UpdateAllowedOperatorEvent struct {
	Actor     string
	Target    string
	Value     bool
	Timestamp uint64
}

// UpdateAllowedTargetEvent records an interactive-target allow-list change.
type UpdateAllowedTargetEvent struct {
	Actor     string
	Target    string
	Value     bool
	Timestamp uint64
}

// UpdatePocketEvent carries the full pocket snapshot after a create or
// update.
type UpdatePocketEvent struct {
	ID        string
	Actor     string
	Pocket    Pocket
	Reason    EventReason
	Timestamp uint64
}

// UpdatePocketStatusEvent records a lifecycle transition.
type UpdatePocketStatusEvent struct {
	ID        string
	Actor     string
	Status    PocketStatus
	Reason    EventReason
	Timestamp uint64
}

// UpdateDepositStatsEvent records a single deposit. Amount is the amount of
// that deposit, not a cumulative total.
type UpdateDepositStatsEvent struct {
	ID        string
	Actor     string
	Amount    *big.Int
	CoinType  string
	Reason    EventReason
	Timestamp uint64
}

// UpdateWithdrawalStatsEvent records a withdrawal of both vault sides.
type UpdateWithdrawalStatsEvent struct {
	ID               string
	Actor            string
	BaseCoinAmount   *big.Int
	BaseCoinType     string
	TargetCoinAmount *big.Int
	TargetCoinType   string
	Reason           EventReason
	Timestamp        uint64
}

// UpdateTradingStatsEvent records one executed swap batch.
type UpdateTradingStatsEvent struct {
	ID                       string
	Actor                    string
	SwappedBaseCoinAmount    *big.Int
	BaseCoinType             string
	ReceivedTargetCoinAmount *big.Int
	TargetCoinType           string
	Reason                   EventReason
	Timestamp                uint64
}

// UpdateClosePositionStatsEvent records a position close swap.
type UpdateClosePositionStatsEvent struct {
	ID                      string
	Actor                   string
	SwappedTargetCoinAmount *big.Int
	TargetCoinType          string
	ReceivedBaseCoinAmount  *big.Int
	BaseCoinType            string
	Reason                  EventReason
	Timestamp               uint64
}
