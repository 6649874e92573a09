package tet

// Baseline primitives (§6), grounded one-for-one on tet.c's builtin_car /
// builtin_cdr / builtin_lambda / builtin_add. builtin_sub/mul/div are
// declared but left empty in the source; Open Question 3 (DESIGN.md)
// resolves their contract conventionally and adds division-by-zero as a
// typed unwind.

func biCar(f *Frame) (int, error) {
	v := f.PopSExpr()
	f.Push(v.Head)
	return 1, nil
}

func biCdr(f *Frame) (int, error) {
	v := f.PopSExpr()
	f.Push(v.Tail)
	return 1, nil
}

func biLambda(f *Frame) (int, error) {
	body := f.PopSExpr()
	pars := f.PopSExpr()
	f.PushClosure(pars, body)
	return 1, nil
}

func biAdd(f *Frame) (int, error) {
	c := f.Size()
	var sum int32
	for i := 0; i < c-1; i++ {
		sum += f.PopNumber()
	}
	f.PushNumber(sum)
	return 1, nil
}

func biSub(f *Frame) (int, error) {
	c := f.Size()
	if c-1 == 0 {
		f.PushNumber(0)
		return 1, nil
	}
	vals := make([]int32, 0, c-1)
	for i := 0; i < c-1; i++ {
		vals = append(vals, f.PopNumber())
	}
	// vals is in reverse argument order; reverse it back before folding.
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	if len(vals) == 1 {
		f.PushNumber(-vals[0])
		return 1, nil
	}
	diff := vals[0]
	for _, v := range vals[1:] {
		diff -= v
	}
	f.PushNumber(diff)
	return 1, nil
}

func biMul(f *Frame) (int, error) {
	c := f.Size()
	prod := int32(1)
	for i := 0; i < c-1; i++ {
		prod *= f.PopNumber()
	}
	f.PushNumber(prod)
	return 1, nil
}

func biDiv(f *Frame) (int, error) {
	c := f.Size()
	vals := make([]int32, 0, c-1)
	for i := 0; i < c-1; i++ {
		vals = append(vals, f.PopNumber())
	}
	for i, j := 0, len(vals)-1; i < j; i, j = i+1, j-1 {
		vals[i], vals[j] = vals[j], vals[i]
	}
	if len(vals) == 0 {
		f.PushNumber(1)
		return 1, nil
	}
	quot := vals[0]
	for _, v := range vals[1:] {
		if v == 0 {
			return 0, &DivideByZeroError{}
		}
		quot /= v
	}
	f.PushNumber(quot)
	return 1, nil
}
