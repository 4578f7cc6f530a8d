package bioanalyzer

import (
	"errors"
	"reflect"
	"testing"
)

func Test_BuildIndex(t *testing.T) {
	type args struct {
		seq string
		k   int
	}
	tests := []struct {
		name    string
		args    args
		want    []IndexEntry
		wantErr bool
	}{
		{
			"entries sorted by kmer then position",
			args{seq: "ATATA", k: 2},
			[]IndexEntry{
				{Kmer: "AT", Pos: 0},
				{Kmer: "AT", Pos: 2},
				{Kmer: "TA", Pos: 1},
				{Kmer: "TA", Pos: 3},
			},
			false,
		},
		{
			"k equal to sequence length",
			args{seq: "ACGT", k: 4},
			[]IndexEntry{{Kmer: "ACGT", Pos: 0}},
			false,
		},
		{
			"k above sequence length is an empty index",
			args{seq: "ACG", k: 5},
			nil,
			false,
		},
		{
			"k below one is invalid",
			args{seq: "ACGT", k: 0},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := BuildIndex(tt.args.seq, tt.args.k)
			if (err != nil) != tt.wantErr {
				t.Errorf("BuildIndex() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("BuildIndex() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if got := index.Entries(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildIndex() entries = %v, want %v", got, tt.want)
			}
		})
	}
}

// the index finds exactly what the naive scan finds for patterns at least
// k long
func Test_KmerIndex_Query_agreesWithNaive(t *testing.T) {
	seq := "ATGCGATCGATCGCTAGCTA"
	index, err := BuildIndex(seq, 3)
	if err != nil {
		t.Fatal(err)
	}

	patterns := []string{"TCG", "ATCG", "GATCG", "TTT", "CTA", "ATGCGATCGATCGCTAGCTA", "TAG"}
	for _, pattern := range patterns {
		want := NaiveMatch(seq, pattern)
		got, err := index.Query(seq, pattern)
		if err != nil {
			t.Errorf("Query(%q) error = %v", pattern, err)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Query(%q) = %v, want %v", pattern, got, want)
		}
	}
}

func Test_KmerIndex_Query_shortPattern(t *testing.T) {
	index, err := BuildIndex("ATGCGATCG", 3)
	if err != nil {
		t.Fatal(err)
	}

	if _, err = index.Query("ATGCGATCG", "AT"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Query() error = %v, want ErrInvalidInput", err)
	}
}

func Test_KmerIndex_Stats(t *testing.T) {
	type args struct {
		seq string
		k   int
	}
	tests := []struct {
		name string
		args args
		want IndexStats
	}{
		{
			"repeated kmers counted once as unique",
			args{seq: "ATATA", k: 2},
			IndexStats{SequenceLength: 5, K: 2, UniqueKmers: 2, TotalKmers: 4},
		},
		{
			"empty index",
			args{seq: "ACG", k: 5},
			IndexStats{SequenceLength: 3, K: 5, UniqueKmers: 0, TotalKmers: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, err := BuildIndex(tt.args.seq, tt.args.k)
			if err != nil {
				t.Fatal(err)
			}
			if got := index.Stats(tt.args.seq); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KmerIndex.Stats() = %v, want %v", got, tt.want)
			}
		})
	}
}
