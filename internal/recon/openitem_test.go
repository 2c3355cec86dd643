package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(gl, amount string) OpenItem {
	return OpenItem{GLEntry: gl, VoucherType: "Journal Entry", VoucherNo: "JV-" + gl, Outstanding: dec(amount)}
}

func TestAllocateOpenItems(t *testing.T) {
	debits := []OpenItem{item("D1", "100"), item("D2", "50")}
	credits := []OpenItem{item("C1", "70"), item("C2", "60")}

	res := AllocateOpenItems(debits, credits)

	require.Len(t, res.Allocations, 3)
	assert.Equal(t, "D1", res.Allocations[0].DebitGL)
	assert.Equal(t, "C1", res.Allocations[0].CreditGL)
	assertAmount(t, "70", res.Allocations[0].Allocated)
	assert.Equal(t, "C2", res.Allocations[1].CreditGL)
	assertAmount(t, "30", res.Allocations[1].Allocated)
	assert.Equal(t, "D2", res.Allocations[2].DebitGL)
	assertAmount(t, "30", res.Allocations[2].Allocated)

	debit, credit := res.Totals()
	assertAmount(t, "20", debit)
	assertAmount(t, "0", credit)

	assertAmount(t, "100", debits[0].Outstanding)
}

func TestAllocateOpenItems_SkipsSettledCredits(t *testing.T) {
	res := AllocateOpenItems([]OpenItem{item("D1", "10")}, []OpenItem{item("C0", "0"), item("C1", "25")})

	require.Len(t, res.Allocations, 1)
	assert.Equal(t, "C1", res.Allocations[0].CreditGL)
	_, credit := res.Totals()
	assertAmount(t, "15", credit)
}

func TestAllocateOpenItems_NoCredits(t *testing.T) {
	res := AllocateOpenItems([]OpenItem{item("D1", "10")}, nil)

	assert.Empty(t, res.Allocations)
	debit, _ := res.Totals()
	assertAmount(t, "10", debit)
}
