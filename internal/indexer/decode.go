package indexer

import (
	"encoding/json"
	"math/big"
	"strconv"

	"hamsterpocket/internal/chain"
	"hamsterpocket/internal/model"
)

// Raw payload mirrors. The node delivers every numeric field as a decimal
// string.

type rawUpgradeEvent struct {
	Actor     string `json:"actor"`
	Timestamp string `json:"timestamp"`
}

type rawAllowListEvent struct {
	Actor     string `json:"actor"`
	Target    string `json:"target"`
	Value     bool   `json:"value"`
	Timestamp string `json:"timestamp"`
}

type rawUpdatePocketEvent struct {
	ID        string               `json:"id"`
	Actor     string               `json:"actor"`
	Pocket    model.PocketResource `json:"pocket"`
	Reason    string               `json:"reason"`
	Timestamp string               `json:"timestamp"`
}

type rawUpdatePocketStatusEvent struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
}

type rawUpdateDepositStatsEvent struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	Amount    string `json:"amount"`
	CoinType  string `json:"coin_type"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
}

type rawUpdateWithdrawalStatsEvent struct {
	ID               string `json:"id"`
	Actor            string `json:"actor"`
	BaseCoinAmount   string `json:"base_coin_amount"`
	BaseCoinType     string `json:"base_coin_type"`
	TargetCoinAmount string `json:"target_coin_amount"`
	TargetCoinType   string `json:"target_coin_type"`
	Reason           string `json:"reason"`
	Timestamp        string `json:"timestamp"`
}

type rawUpdateTradingStatsEvent struct {
	ID                       string `json:"id"`
	Actor                    string `json:"actor"`
	SwappedBaseCoinAmount    string `json:"swapped_base_coin_amount"`
	BaseCoinType             string `json:"base_coin_type"`
	ReceivedTargetCoinAmount string `json:"received_target_coin_amount"`
	TargetCoinType           string `json:"target_coin_type"`
	Reason                   string `json:"reason"`
	Timestamp                string `json:"timestamp"`
}

type rawUpdateClosePositionStatsEvent struct {
	ID                      string `json:"id"`
	Actor                   string `json:"actor"`
	SwappedTargetCoinAmount string `json:"swapped_target_coin_amount"`
	TargetCoinType          string `json:"target_coin_type"`
	ReceivedBaseCoinAmount  string `json:"received_base_coin_amount"`
	BaseCoinType            string `json:"base_coin_type"`
	Reason                  string `json:"reason"`
	Timestamp               string `json:"timestamp"`
}

func decodeEvent(name model.EventName, raw chain.RawEvent) (model.PocketEvent, error) {
	event := model.PocketEvent{
		Name:           name,
		AccountAddress: raw.GUID.AccountAddress,
	}

	var err error
	if event.CreationNumber, err = eventUint("guid.creation_number", raw.GUID.CreationNumber); err != nil {
		return model.PocketEvent{}, err
	}
	if event.SequenceNumber, err = eventUint("sequence_number", raw.SequenceNumber); err != nil {
		return model.PocketEvent{}, err
	}
	if raw.Version != "" {
		if event.Version, err = eventUint("version", raw.Version); err != nil {
			return model.PocketEvent{}, err
		}
	}

	event.Data, err = decodePayload(name, raw.Data)
	if err != nil {
		return model.PocketEvent{}, err
	}
	return event, nil
}

func decodePayload(name model.EventName, data json.RawMessage) (interface{}, error) {
	switch name {
	case model.EventUpgrade:
		var raw rawUpgradeEvent
		if err := unmarshalPayload(name, data, &raw); err != nil {
			return nil, err
		}
		ts, err := eventUint("timestamp", raw.Timestamp)
		if err != nil {
			return nil, err
		}
		return model.UpgradeEvent{Actor: raw.Actor, Timestamp: ts}, nil

	case model.EventUpdateAllowedAdmin, model.EventUpdateAllowedOperator, model.EventUpdateAllowedTarget:
		var raw rawAllowListEvent
		if err := unmarshalPayload(name, data, &raw); err != nil {
			return nil, err
		}
		ts, err := eventUint("timestamp", raw.Timestamp)
		if err != nil {
			return nil, err
		}
		switch name {
		case model.EventUpdateAllowedAdmin:
			return model.UpdateAllowedAdminEvent{Actor: raw.Actor, Target: raw.Target, Value: raw.Value, Timestamp: ts}, nil
		case model.EventUpdateAllowedOperator:
			return model.UpdateAllowedOperatorEvent{Actor: raw.Actor, Target: raw.Target, Value: raw.Value, Timestamp: ts}, nil
		default:
			return model.UpdateAllowedTargetEvent{Actor: raw.Actor, Target: raw.Target, Value: raw.Value, Timestamp: ts}, nil
		}

	case model.EventCreatePocket, model.EventUpdatePocket:
		var raw rawUpdatePocketEvent
		if err := unmarshalPayload(name, data, &raw); err != nil {
			return nil, err
		}
		pocket, err := model.TransformPocket(raw.Pocket)
		if err != nil {
			return nil, err
		}
		ts, err := eventUint("timestamp", raw.Timestamp)
		if err != nil {
			return nil, err
		}
		return model.UpdatePocketEvent{
			ID:        raw.ID,
			Actor:     raw.Actor,
			Pocket:    pocket,
			Reason:    model.EventReason(raw.Reason),
			Timestamp: ts,
		}, nil

	case model.EventUpdatePocketStatus:
		var raw rawUpdatePocketStatusEvent
		if err := unmarshalPayload(name, data, &raw); err != nil {
			return nil, err
		}
		status, err := eventStatus(raw.Status)
		if err != nil {
			return nil, err
		}
		ts, err := eventUint("timestamp", raw.Timestamp)
		if err != nil {
			return nil, err
		}
		return model.UpdatePocketStatusEvent{
			ID:        raw.ID,
			Actor:     raw.Actor,
			Status:    status,
			Reason:    model.EventReason(raw.Reason),
			Timestamp: ts,
		}, nil

	case model.EventUpdateDepositStats:
		var raw rawUpdateDepositStatsEvent
		if err := unmarshalPayload(name, data, &raw); err != nil {
			return nil, err
		}
		amount, err := eventAmount("amount", raw.Amount)
		if err != nil {
			return nil, err
		}
		ts, err := eventUint("timestamp", raw.Timestamp)
		if err != nil {
			return nil, err
		}
		return model.UpdateDepositStatsEvent{
			ID:        raw.ID,
			Actor:     raw.Actor,
			Amount:    amount,
			CoinType:  raw.CoinType,
			Reason:    model.EventReason(raw.Reason),
			Timestamp: ts,
		}, nil

	case model.EventUpdateWithdrawalStats:
		var raw rawUpdateWithdrawalStatsEvent
		if err := unmarshalPayload(name, data, &raw); err != nil {
			return nil, err
		}
		base, err := eventAmount("base_coin_amount", raw.BaseCoinAmount)
		if err != nil {
			return nil, err
		}
		target, err := eventAmount("target_coin_amount", raw.TargetCoinAmount)
		if err != nil {
			return nil, err
		}
		ts, err := eventUint("timestamp", raw.Timestamp)
		if err != nil {
			return nil, err
		}
		return model.UpdateWithdrawalStatsEvent{
			ID:               raw.ID,
			Actor:            raw.Actor,
			BaseCoinAmount:   base,
			BaseCoinType:     raw.BaseCoinType,
			TargetCoinAmount: target,
			TargetCoinType:   raw.TargetCoinType,
			Reason:           model.EventReason(raw.Reason),
			Timestamp:        ts,
		}, nil

	case model.EventUpdateTradingStats:
		var raw rawUpdateTradingStatsEvent
		if err := unmarshalPayload(name, data, &raw); err != nil {
			return nil, err
		}
		swapped, err := eventAmount("swapped_base_coin_amount", raw.SwappedBaseCoinAmount)
		if err != nil {
			return nil, err
		}
		received, err := eventAmount("received_target_coin_amount", raw.ReceivedTargetCoinAmount)
		if err != nil {
			return nil, err
		}
		ts, err := eventUint("timestamp", raw.Timestamp)
		if err != nil {
			return nil, err
		}
		return model.UpdateTradingStatsEvent{
			ID:                       raw.ID,
			Actor:                    raw.Actor,
			SwappedBaseCoinAmount:    swapped,
			BaseCoinType:             raw.BaseCoinType,
			ReceivedTargetCoinAmount: received,
			TargetCoinType:           raw.TargetCoinType,
			Reason:                   model.EventReason(raw.Reason),
			Timestamp:                ts,
		}, nil

	case model.EventUpdateClosePositionStats:
		var raw rawUpdateClosePositionStatsEvent
		if err := unmarshalPayload(name, data, &raw); err != nil {
			return nil, err
		}
		swapped, err := eventAmount("swapped_target_coin_amount", raw.SwappedTargetCoinAmount)
		if err != nil {
			return nil, err
		}
		received, err := eventAmount("received_base_coin_amount", raw.ReceivedBaseCoinAmount)
		if err != nil {
			return nil, err
		}
		ts, err := eventUint("timestamp", raw.Timestamp)
		if err != nil {
			return nil, err
		}
		return model.UpdateClosePositionStatsEvent{
			ID:                      raw.ID,
			Actor:                   raw.Actor,
			SwappedTargetCoinAmount: swapped,
			TargetCoinType:          raw.TargetCoinType,
			ReceivedBaseCoinAmount:  received,
			BaseCoinType:            raw.BaseCoinType,
			Reason:                  model.EventReason(raw.Reason),
			Timestamp:               ts,
		}, nil

	default:
		return nil, &model.DecodeError{Field: "event_name", Value: string(name)}
	}
}

func unmarshalPayload(name model.EventName, data json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return &model.DecodeError{Field: string(name), Value: string(data)}
	}
	return nil
}

func eventUint(field, value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, &model.DecodeError{Field: field, Value: value}
	}
	return n, nil
}

func eventAmount(field, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.Sign() < 0 {
		return nil, &model.DecodeError{Field: field, Value: value}
	}
	return n, nil
}

func eventStatus(value string) (model.PocketStatus, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil || n > uint64(model.StatusWithdrawn) {
		return 0, &model.DecodeError{Field: "status", Value: value}
	}
	return model.PocketStatus(n), nil
}
