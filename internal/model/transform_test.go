package model

import (
	"errors"
	"math/big"
	"reflect"
	"testing"
)

func rawFixture() PocketResource {
	return PocketResource{
		ID:                       "p1",
		Owner:                    "0x7d",
		BaseCoinType:             "0x1::aptos_coin::AptosCoin",
		TargetCoinType:           "0x7d::coins::BTC",
		BaseCoinBalance:          "20000",
		TargetCoinBalance:        "0",
		AMM:                      "0",
		Status:                   "0",
		StartAt:                  "1700000000",
		Frequency:                "3600",
		NextScheduledExecutionAt: "1700000000",
		BatchVolume:              "1000",
		ExecutedBatchAmount:      "0",
		OpenPositionCondition:    OpenPositionConditionResource{Operator: "0", ValueX: "0", ValueY: "0"},
		StopLossCondition:        StopConditionResource{StoppedWith: "0", Value: "0"},
		TakeProfitCondition:      StopConditionResource{StoppedWith: "0", Value: "0"},
		AutoCloseConditions: []AutoCloseConditionResource{
			{ClosedWith: "0", Value: "13"},
		},
		TotalDepositedBaseAmount:          "20000",
		TotalSwappedBaseAmount:            "0",
		TotalReceivedTargetAmount:         "0",
		TotalReceivedFundInBaseAmount:     "0",
		TotalClosedPositionInTargetAmount: "0",
	}
}

func TestTransformPocket(t *testing.T) {
	got, err := TransformPocket(rawFixture())
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	want := Pocket{
		ID:                       "p1",
		Owner:                    "0x7d",
		BaseCoinType:             "0x1::aptos_coin::AptosCoin",
		TargetCoinType:           "0x7d::coins::BTC",
		BaseCoinBalance:          big.NewInt(20000),
		TargetCoinBalance:        big.NewInt(0),
		AMM:                      AMMPancakeSwap,
		Status:                   StatusActive,
		StartAt:                  1700000000,
		Frequency:                3600,
		NextScheduledExecutionAt: 1700000000,
		BatchVolume:              big.NewInt(1000),
		ExecutedBatchAmount:      0,
		OpenPositionCondition: OpenPositionCondition{
			Operator: OperatorUnset,
			ValueX:   big.NewInt(0),
			ValueY:   big.NewInt(0),
		},
		StopLossCondition:   StopCondition{StoppedWith: StoppedWithUnset, Value: big.NewInt(0)},
		TakeProfitCondition: StopCondition{StoppedWith: StoppedWithUnset, Value: big.NewInt(0)},
		AutoCloseConditions: []AutoCloseCondition{
			{ClosedWith: ClosedWithEndTime, Value: big.NewInt(13)},
		},
		TotalDepositedBaseAmount:          big.NewInt(20000),
		TotalSwappedBaseAmount:            big.NewInt(0),
		TotalReceivedTargetAmount:         big.NewInt(0),
		TotalReceivedFundInBaseAmount:     big.NewInt(0),
		TotalClosedPositionInTargetAmount: big.NewInt(0),
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pocket mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestTransformPocketLargeAmount(t *testing.T) {
	raw := rawFixture()
	raw.TotalDepositedBaseAmount = "340282366920938463463374607431768211455"

	got, err := TransformPocket(raw)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	want, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	if got.TotalDepositedBaseAmount.Cmp(want) != 0 {
		t.Fatalf("large amount mismatch: %s", got.TotalDepositedBaseAmount)
	}
}

func TestTransformPocketRejectsBadNumeric(t *testing.T) {
	raw := rawFixture()
	raw.BaseCoinBalance = "not-a-number"

	var decodeErr *DecodeError
	if _, err := TransformPocket(raw); !errors.As(err, &decodeErr) {
		t.Fatalf("want DecodeError, got %v", err)
	}
	if decodeErr.Field != "base_coin_balance" {
		t.Fatalf("unexpected field: %s", decodeErr.Field)
	}
}

func TestTransformPocketRejectsUnknownStatus(t *testing.T) {
	raw := rawFixture()
	raw.Status = "9"

	var decodeErr *DecodeError
	if _, err := TransformPocket(raw); !errors.As(err, &decodeErr) {
		t.Fatalf("want DecodeError for unknown status code, got %v", err)
	}
}

func TestTransformPocketRejectsUnknownConditionCode(t *testing.T) {
	raw := rawFixture()
	raw.AutoCloseConditions[0].ClosedWith = "4"

	var decodeErr *DecodeError
	if _, err := TransformPocket(raw); !errors.As(err, &decodeErr) {
		t.Fatalf("want DecodeError for unknown closed_with code, got %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]PocketStatus{
		{StatusActive, StatusPaused},
		{StatusPaused, StatusActive},
		{StatusActive, StatusClosed},
		{StatusPaused, StatusClosed},
		{StatusClosed, StatusWithdrawn},
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Fatalf("%s -> %s should be allowed", pair[0], pair[1])
		}
	}

	forbidden := [][2]PocketStatus{
		{StatusClosed, StatusPaused},
		{StatusClosed, StatusActive},
		{StatusWithdrawn, StatusActive},
		{StatusWithdrawn, StatusPaused},
		{StatusWithdrawn, StatusClosed},
		{StatusWithdrawn, StatusWithdrawn},
	}
	for _, pair := range forbidden {
		if CanTransition(pair[0], pair[1]) {
			t.Fatalf("%s -> %s must be rejected", pair[0], pair[1])
		}
	}
}
