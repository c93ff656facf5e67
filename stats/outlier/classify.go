package outlier

// Outliers holds the positions of values outside the inner fence
// (k*IQR, mild) and the outer fence (2k*IQR, extreme). An index appears in
// at most one of the two lists.
type Outliers struct {
	Inner   Bounds
	Outer   Bounds
	Mild    []int
	Extreme []int
}

// Count returns the total number of flagged values.
func (o Outliers) Count() int {
	return len(o.Mild) + len(o.Extreme)
}

// Classify flags outliers without modifying values. With the default
// multiplier the fences are the usual 1.5 and 3 IQR.
func Classify(values []float64, opts ...Option) (Outliers, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return Outliers{}, err
	}
	q1, q3, err := Quartiles(values)
	if err != nil {
		return Outliers{}, err
	}

	res := Outliers{
		Inner: fence(q1, q3, cfg.multiplier),
		Outer: fence(q1, q3, 2*cfg.multiplier),
	}
	for i, v := range values {
		switch {
		case !res.Outer.Contains(v):
			res.Extreme = append(res.Extreme, i)
		case !res.Inner.Contains(v):
			res.Mild = append(res.Mild, i)
		}
	}
	return res, nil
}
