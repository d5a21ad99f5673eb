package ledger

import (
	"testing"

	"github.com/fsdevblog/groupsplit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSplit(t *testing.T) {
	groupMembers := []int64{1, 2, 3, 4}

	cases := []struct {
		name      string
		total     decimal.Decimal
		memberIDs []int64
		splits    []SplitInput
		wantErr   error
	}{
		{
			name:      "equal split ok",
			total:     decimal.NewFromFloat(90),
			memberIDs: []int64{1, 2, 3},
		}, {
			name:      "zero amount",
			total:     decimal.Zero,
			memberIDs: []int64{1, 2},
			wantErr:   domain.ErrInvalidAmount,
		}, {
			name:      "negative amount",
			total:     decimal.NewFromFloat(-10),
			memberIDs: []int64{1, 2},
			wantErr:   domain.ErrInvalidAmount,
		}, {
			name:      "empty member set",
			total:     decimal.NewFromFloat(10),
			memberIDs: []int64{},
			wantErr:   domain.ErrEmptyMemberSet,
		}, {
			name:      "member outside group",
			total:     decimal.NewFromFloat(10),
			memberIDs: []int64{1, 99},
			wantErr:   domain.ErrInvalidMember,
		}, {
			name:      "custom split ok",
			total:     decimal.NewFromFloat(100),
			memberIDs: []int64{1, 2},
			splits: []SplitInput{
				{UserID: 1, Amount: decimal.NewFromFloat(70)},
				{UserID: 2, Amount: decimal.NewFromFloat(30)},
			},
		}, {
			name:      "split includes non selected member",
			total:     decimal.NewFromFloat(100),
			memberIDs: []int64{1, 2},
			splits: []SplitInput{
				{UserID: 1, Amount: decimal.NewFromFloat(70)},
				{UserID: 3, Amount: decimal.NewFromFloat(30)},
			},
			wantErr: domain.ErrInvalidMember,
		}, {
			// 99.50 при общей сумме 100 - расхождение больше допуска.
			name:      "split sum mismatch",
			total:     decimal.NewFromFloat(100),
			memberIDs: []int64{1, 2},
			splits: []SplitInput{
				{UserID: 1, Amount: decimal.NewFromFloat(70)},
				{UserID: 2, Amount: decimal.NewFromFloat(29.50)},
			},
			wantErr: domain.ErrSplitMismatch,
		}, {
			// 99.995 - в пределах допуска 0.01, принимается.
			name:      "split sum within tolerance",
			total:     decimal.NewFromFloat(100),
			memberIDs: []int64{1, 2},
			splits: []SplitInput{
				{UserID: 1, Amount: decimal.NewFromFloat(70)},
				{UserID: 2, Amount: decimal.NewFromFloat(29.995)},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSplit(tc.total, tc.memberIDs, tc.splits, groupMembers)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestShares_EqualSplit(t *testing.T) {
	shares := Shares(decimal.NewFromFloat(90), []int64{1, 2, 3}, nil)
	require.Len(t, shares, 3)
	for i, share := range shares {
		assert.True(t, share.Amount.Equal(decimal.NewFromFloat(30)), "share #%d = %s", i, share.Amount)
	}
}

// Политика округления равной разбивки: доли не корректируются по копейкам,
// каждая равна total/n с точностью decimal-деления. 100 на троих дает три доли
// по 33.33(3)..., сумма которых расходится со 100 меньше чем на допуск.
func TestShares_EqualSplitIndivisible(t *testing.T) {
	total := decimal.NewFromFloat(100)
	shares := Shares(total, []int64{1, 2, 3}, nil)
	require.Len(t, shares, 3)

	expected := total.Div(decimal.NewFromInt(3))
	sum := decimal.Zero
	for _, share := range shares {
		assert.True(t, share.Amount.Equal(expected))
		sum = sum.Add(share.Amount)
	}
	assert.True(t, sum.Sub(total).Abs().LessThan(amountTolerance),
		"shares sum %s drifts from total %s beyond tolerance", sum, total)
}

func TestShares_CustomSplitKeepsMemberOrder(t *testing.T) {
	splits := []SplitInput{
		{UserID: 2, Amount: decimal.NewFromFloat(30)},
		{UserID: 1, Amount: decimal.NewFromFloat(70)},
	}
	shares := Shares(decimal.NewFromFloat(100), []int64{1, 2}, splits)
	require.Len(t, shares, 2)
	assert.Equal(t, int64(1), shares[0].UserID)
	assert.True(t, shares[0].Amount.Equal(decimal.NewFromFloat(70)))
	assert.Equal(t, int64(2), shares[1].UserID)
	assert.True(t, shares[1].Amount.Equal(decimal.NewFromFloat(30)))
}
