package model

import (
	"math/big"
	"strconv"
)

// TransformPocket converts the raw string-encoded resource into the typed
// domain model. Any unparsable numeric string or unknown enum code fails
// with a DecodeError; there is no partial recovery.
func TransformPocket(raw PocketResource) (Pocket, error) {
	p := Pocket{
		ID:             raw.ID,
		Owner:          raw.Owner,
		BaseCoinType:   raw.BaseCoinType,
		TargetCoinType: raw.TargetCoinType,
	}

	var err error
	if p.BaseCoinBalance, err = parseAmount("base_coin_balance", raw.BaseCoinBalance); err != nil {
		return Pocket{}, err
	}
	if p.TargetCoinBalance, err = parseAmount("target_coin_balance", raw.TargetCoinBalance); err != nil {
		return Pocket{}, err
	}
	if p.BatchVolume, err = parseAmount("batch_volume", raw.BatchVolume); err != nil {
		return Pocket{}, err
	}

	amm, err := parseCode("amm", raw.AMM, maxAMM)
	if err != nil {
		return Pocket{}, err
	}
	p.AMM = AMM(amm)

	status, err := parseCode("status", raw.Status, maxPocketStatus)
	if err != nil {
		return Pocket{}, err
	}
	p.Status = PocketStatus(status)

	if p.StartAt, err = parseUint("start_at", raw.StartAt); err != nil {
		return Pocket{}, err
	}
	if p.Frequency, err = parseUint("frequency", raw.Frequency); err != nil {
		return Pocket{}, err
	}
	if p.NextScheduledExecutionAt, err = parseUint("next_scheduled_execution_at", raw.NextScheduledExecutionAt); err != nil {
		return Pocket{}, err
	}
	if p.ExecutedBatchAmount, err = parseUint("executed_batch_amount", raw.ExecutedBatchAmount); err != nil {
		return Pocket{}, err
	}

	if p.OpenPositionCondition, err = transformOpenPositionCondition(raw.OpenPositionCondition); err != nil {
		return Pocket{}, err
	}
	if p.StopLossCondition, err = transformStopCondition("stop_loss_condition", raw.StopLossCondition); err != nil {
		return Pocket{}, err
	}
	if p.TakeProfitCondition, err = transformStopCondition("take_profit_condition", raw.TakeProfitCondition); err != nil {
		return Pocket{}, err
	}

	p.AutoCloseConditions = make([]AutoCloseCondition, 0, len(raw.AutoCloseConditions))
	for _, cond := range raw.AutoCloseConditions {
		closedWith, err := parseCode("auto_close_conditions.closed_with", cond.ClosedWith, maxClosedWith)
		if err != nil {
			return Pocket{}, err
		}
		value, err := parseAmount("auto_close_conditions.value", cond.Value)
		if err != nil {
			return Pocket{}, err
		}
		p.AutoCloseConditions = append(p.AutoCloseConditions, AutoCloseCondition{
			ClosedWith: AutoCloseConditionClosedWith(closedWith),
			Value:      value,
		})
	}

	if p.TotalDepositedBaseAmount, err = parseAmount("total_deposited_base_amount", raw.TotalDepositedBaseAmount); err != nil {
		return Pocket{}, err
	}
	if p.TotalSwappedBaseAmount, err = parseAmount("total_swapped_base_amount", raw.TotalSwappedBaseAmount); err != nil {
		return Pocket{}, err
	}
	if p.TotalReceivedTargetAmount, err = parseAmount("total_received_target_amount", raw.TotalReceivedTargetAmount); err != nil {
		return Pocket{}, err
	}
	if p.TotalReceivedFundInBaseAmount, err = parseAmount("total_received_fund_in_base_amount", raw.TotalReceivedFundInBaseAmount); err != nil {
		return Pocket{}, err
	}
	if p.TotalClosedPositionInTargetAmount, err = parseAmount("total_closed_position_in_target_amount", raw.TotalClosedPositionInTargetAmount); err != nil {
		return Pocket{}, err
	}

	return p, nil
}

func transformOpenPositionCondition(raw OpenPositionConditionResource) (OpenPositionCondition, error) {
	operator, err := parseCode("open_position_condition.operator", raw.Operator, maxOperator)
	if err != nil {
		return OpenPositionCondition{}, err
	}
	valueX, err := parseAmount("open_position_condition.value_x", raw.ValueX)
	if err != nil {
		return OpenPositionCondition{}, err
	}
	valueY, err := parseAmount("open_position_condition.value_y", raw.ValueY)
	if err != nil {
		return OpenPositionCondition{}, err
	}
	return OpenPositionCondition{
		Operator: OpenPositionOperator(operator),
		ValueX:   valueX,
		ValueY:   valueY,
	}, nil
}

func transformStopCondition(field string, raw StopConditionResource) (StopCondition, error) {
	stoppedWith, err := parseCode(field+".stopped_with", raw.StoppedWith, maxStoppedWith)
	if err != nil {
		return StopCondition{}, err
	}
	value, err := parseAmount(field+".value", raw.Value)
	if err != nil {
		return StopCondition{}, err
	}
	return StopCondition{
		StoppedWith: StopConditionStoppedWith(stoppedWith),
		Value:       value,
	}, nil
}

// parseAmount parses a decimal string into an arbitrary-precision unsigned
// integer.
func parseAmount(field, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.Sign() < 0 {
		return nil, &DecodeError{Field: field, Value: value}
	}
	return n, nil
}

func parseUint(field, value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, &DecodeError{Field: field, Value: value}
	}
	return n, nil
}

// parseCode parses a decimal enum code and rejects codes beyond the highest
// known variant.
func parseCode(field, value string, max uint64) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil || n > max {
		return 0, &DecodeError{Field: field, Value: value}
	}
	return n, nil
}
