package gobench_test

import (
	"testing"

	"github.com/gobench-dev/gobench"
)

func TestInstanceDisplayName(t *testing.T) {
	cases := []struct {
		inst gobench.Instance
		want string
	}{
		{gobench.Instance{Name: "Fib"}, "Fib"},
		{gobench.Instance{Name: "Fib", Args: []int64{10}}, "Fib/10"},
		{gobench.Instance{Name: "Fib", Args: []int64{10, 20}}, "Fib/10/20"},
		{gobench.Instance{Name: "Fib", Threads: 1}, "Fib"},
		{gobench.Instance{Name: "Fib", Args: []int64{10}, Threads: 4}, "Fib/10/threads:4"},
	}
	for _, c := range cases {
		if got := c.inst.DisplayName(); got != c.want {
			t.Errorf("DisplayName() = %q, want %q", got, c.want)
		}
	}
}

func TestInstanceRange(t *testing.T) {
	inst := gobench.Instance{Args: []int64{8, 64}}
	if got := inst.Range(0); got != 8 {
		t.Errorf("Range(0) = %d, want 8", got)
	}
	if got := inst.Range(1); got != 64 {
		t.Errorf("Range(1) = %d, want 64", got)
	}
	if got := inst.Range(-1); got != 0 {
		t.Errorf("Range(-1) = %d, want 0", got)
	}
	if got := inst.Range(2); got != 0 {
		t.Errorf("Range(2) = %d, want 0", got)
	}
}

func TestTimeUnitString(t *testing.T) {
	cases := map[gobench.TimeUnit]string{
		gobench.Nanosecond:  "ns",
		gobench.Microsecond: "us",
		gobench.Millisecond: "ms",
		gobench.Second:      "s",
	}
	for unit, want := range cases {
		if got := unit.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", unit, got, want)
		}
	}
}

func TestComplexityString(t *testing.T) {
	if got := gobench.ON2.String(); got != "O(N^2)" {
		t.Errorf("ON2.String() = %q, want %q", got, "O(N^2)")
	}
	if got := gobench.ComplexityNone.String(); got != "none" {
		t.Errorf("ComplexityNone.String() = %q, want %q", got, "none")
	}
}
