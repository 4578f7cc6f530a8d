package bioanalyzer

import (
	"reflect"
	"testing"
)

func Test_NaiveMatch(t *testing.T) {
	type args struct {
		seq     string
		pattern string
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{
			"single match",
			args{seq: "ATGCGATCG", pattern: "GAT"},
			[]int{4},
		},
		{
			"overlapping matches",
			args{seq: "AAAAA", pattern: "AA"},
			[]int{0, 1, 2, 3},
		},
		{
			"whole sequence",
			args{seq: "ACGT", pattern: "ACGT"},
			[]int{0},
		},
		{
			"no match",
			args{seq: "ACGT", pattern: "TTT"},
			nil,
		},
		{
			"pattern longer than sequence",
			args{seq: "ACG", pattern: "ACGT"},
			nil,
		},
		{
			"empty pattern matches nowhere",
			args{seq: "ACGT", pattern: ""},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NaiveMatch(tt.args.seq, tt.args.pattern); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NaiveMatch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_BoyerMooreMatch(t *testing.T) {
	type args struct {
		seq     string
		pattern string
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{
			"single match",
			args{seq: "ATGCGATCG", pattern: "GAT"},
			[]int{4},
		},
		{
			"overlapping matches survive the shift",
			args{seq: "GCGCGCGC", pattern: "GCG"},
			[]int{0, 2, 4},
		},
		{
			"mismatched byte right of its pattern occurrence",
			args{seq: "TACAA", pattern: "ACAA"},
			[]int{1},
		},
		{
			"no match",
			args{seq: "ACGT", pattern: "TTT"},
			nil,
		},
		{
			"empty pattern matches nowhere",
			args{seq: "ACGT", pattern: ""},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, table := BoyerMooreMatch(tt.args.seq, tt.args.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BoyerMooreMatch() = %v, want %v", got, tt.want)
			}
			if table == nil || table.Pattern != tt.args.pattern {
				t.Errorf("BoyerMooreMatch() table built for %q, want %q", table.Pattern, tt.args.pattern)
			}
		})
	}
}

// the naive scan is the ground truth for Boyer-Moore
func Test_BoyerMooreMatch_agreesWithNaive(t *testing.T) {
	pairs := []struct {
		seq     string
		pattern string
	}{
		{"TACAA", "ACAA"},
		{"AAAAA", "AAA"},
		{"ATGCGATCGATCGC", "TCG"},
		{"GCGCGCGC", "GCG"},
		{"ACGT", "T"},
		{"ACGT", "ACGTACGT"},
		{"", "A"},
		{"ATGCGATCGATCGCTAGCTA", "ATCG"},
		{"NNANNANN", "NNA"},
	}

	for _, pair := range pairs {
		want := NaiveMatch(pair.seq, pair.pattern)
		got, _ := BoyerMooreMatch(pair.seq, pair.pattern)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("BoyerMooreMatch(%q, %q) = %v, want %v", pair.seq, pair.pattern, got, want)
		}
	}
}

func Test_BadCharTable_Shift(t *testing.T) {
	table := NewBadCharTable("TCGC")

	type args struct {
		c byte
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			"rightmost occurrence is the last byte",
			args{c: 'C'},
			0,
		},
		{
			"one from the end",
			args{c: 'G'},
			1,
		},
		{
			"first byte",
			args{c: 'T'},
			3,
		},
		{
			"absent byte shifts a full pattern length",
			args{c: 'A'},
			4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Shift(tt.args.c); got != tt.want {
				t.Errorf("BadCharTable.Shift() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_BadCharTable_Alphabet(t *testing.T) {
	type args struct {
		pattern string
	}
	tests := []struct {
		name string
		args args
		want []byte
	}{
		{
			"standard bases only",
			args{pattern: "TCGC"},
			[]byte("ACGTN"),
		},
		{
			"pattern bytes outside the bases appended",
			args{pattern: "ACRA"},
			[]byte("ACGTNR"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBadCharTable(tt.args.pattern).Alphabet(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BadCharTable.Alphabet() = %s, want %s", got, tt.want)
			}
		})
	}
}
