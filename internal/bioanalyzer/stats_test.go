package bioanalyzer

import (
	"reflect"
	"testing"
)

func Test_Summarize(t *testing.T) {
	type args struct {
		values []int
	}
	tests := []struct {
		name string
		args args
		want Summary
	}{
		{
			"lengths",
			args{[]int{9, 9, 9, 9}},
			Summary{Count: 4, Min: 9, Max: 9, Mean: 9},
		},
		{
			"positions",
			args{[]int{2, 17, 5}},
			Summary{Count: 3, Min: 2, Max: 17, Mean: 8},
		},
		{
			"single value",
			args{[]int{42}},
			Summary{Count: 1, Min: 42, Max: 42, Mean: 42},
		},
		{
			"empty",
			args{[]int{}},
			Summary{},
		},
		{
			"nil",
			args{nil},
			Summary{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.args.values); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Summarize() = %v, want %v", got, tt.want)
			}
		})
	}
}
