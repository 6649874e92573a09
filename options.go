package tet

// Options configures a new interpreter's initial capacities. The defaults
// match tet.c's TET_HEAP_INIT_CAP/TET_STACK_INIT_CAP constants.
type Options struct {
	HeapInitialCap  int
	StackInitialCap int
}

func defaultOptions() Options {
	return Options{
		HeapInitialCap:  registryInitialCap,
		StackInitialCap: frameStackInitialCap,
	}
}

// Option mutates an Options value; NewInterpreter accepts zero or more.
type Option func(*Options)

func WithHeapInitialCap(n int) Option {
	return func(o *Options) { o.HeapInitialCap = n }
}

func WithStackInitialCap(n int) Option {
	return func(o *Options) { o.StackInitialCap = n }
}
