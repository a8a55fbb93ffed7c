package model

// PocketResource mirrors the node's JSON representation of a pocket, in
// which every numeric and enum field arrives as a decimal string.
type PocketResource struct {
	ID    string `json:"id"`
	Owner string `json:"owner"`

	BaseCoinType      string `json:"base_coin_type"`
	TargetCoinType    string `json:"target_coin_type"`
	BaseCoinBalance   string `json:"base_coin_balance"`
	TargetCoinBalance string `json:"target_coin_balance"`

	AMM    string `json:"amm"`
	Status string `json:"status"`

	StartAt                  string `json:"start_at"`
	Frequency                string `json:"frequency"`
	NextScheduledExecutionAt string `json:"next_scheduled_execution_at"`
	BatchVolume              string `json:"batch_volume"`
	ExecutedBatchAmount      string `json:"executed_batch_amount"`

	OpenPositionCondition OpenPositionConditionResource `json:"open_position_condition"`
	StopLossCondition     StopConditionResource         `json:"stop_loss_condition"`
	TakeProfitCondition   StopConditionResource         `json:"take_profit_condition"`
	AutoCloseConditions   []AutoCloseConditionResource  `json:"auto_close_conditions"`

	TotalDepositedBaseAmount          string `json:"total_deposited_base_amount"`
	TotalSwappedBaseAmount            string `json:"total_swapped_base_amount"`
	TotalReceivedTargetAmount         string `json:"total_received_target_amount"`
	TotalReceivedFundInBaseAmount     string `json:"total_received_fund_in_base_amount"`
	TotalClosedPositionInTargetAmount string `json:"total_closed_position_in_target_amount"`
}

// OpenPositionConditionResource is the raw open-position condition.
type OpenPositionConditionResource struct {
	Operator string `json:"operator"`
	ValueX   string `json:"value_x"`
	ValueY   string `json:"value_y"`
}

// StopConditionResource is the raw stop-loss/take-profit condition.
type StopConditionResource struct {
	StoppedWith string `json:"stopped_with"`
	Value       string `json:"value"`
}

// AutoCloseConditionResource is one raw auto-close condition.
type AutoCloseConditionResource struct {
	ClosedWith string `json:"closed_with"`
	Value      string `json:"value"`
}
