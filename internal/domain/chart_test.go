package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignPlacement(t *testing.T) {
	tests := []struct {
		name       string
		longitude  float64
		wantSign   Sign
		wantWithin float64
	}{
		{name: "начало круга", longitude: 0, wantSign: "Aries", wantWithin: 0},
		{name: "середина знака", longitude: 45.5, wantSign: "Taurus", wantWithin: 15.5},
		{name: "граница знака", longitude: 30, wantSign: "Taurus", wantWithin: 0},
		{name: "последний знак", longitude: 359.9, wantSign: "Pisces", wantWithin: 29.9},
		{name: "лев", longitude: 132.3, wantSign: "Leo", wantWithin: 12.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sign, within := SignPlacement(tt.longitude)
			assert.Equal(t, tt.wantSign, sign)
			assert.InDelta(t, tt.wantWithin, within, 1e-9)
		})
	}
}

func TestSignPlacementPeriodic(t *testing.T) {
	for _, longitude := range []float64{0, 13.7, 96.2, 271.4, 359.999} {
		sign, within := SignPlacement(longitude)
		signShifted, withinShifted := SignPlacement(longitude + 360)

		assert.Equal(t, sign, signShifted)
		assert.InDelta(t, within, withinShifted, 1e-9)
	}
}

func TestSignPlacementTotal(t *testing.T) {
	// включая отрицательные и большие значения: within всегда в [0,30)
	for _, longitude := range []float64{-720, -359.5, -0.1, 0, 29.999, 360, 721.3, 100000} {
		_, within := SignPlacement(longitude)

		assert.GreaterOrEqual(t, within, 0.0)
		assert.Less(t, within, 30.0)
	}
}

func TestTopicLabel(t *testing.T) {
	assert.Equal(t, "отношения", TopicRelationships.Label())
	assert.Equal(t, "общая карта", TopicGeneral.Label())
	assert.Equal(t, "общая тема", Topic("unknown").Label())
}

func TestStateIsValid(t *testing.T) {
	for _, state := range []State{
		StateAskDate, StateAskTime, StateAskCity, StateAskCountry,
		StateAskTZ, StateAskTopic, StateAskFreeform,
	} {
		assert.True(t, state.IsValid(), state)
	}

	assert.False(t, State("ASK_SOMETHING").IsValid())
}
