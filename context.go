package orbitals

// Context is the per-step state handed to every controller and event.
type Context struct {
	T              float64 // Time at the start of the step (s)
	Dt             float64 // Step size (s)
	Iteration      int
	PutIntoHistory bool // Whether this step is recorded
	Log            *Log
}

func (c *Context) infof(format string, args ...interface{}) {
	if c.Log != nil {
		c.Log.Info(c.T, format, args...)
	}
}

func (c *Context) errorf(format string, args ...interface{}) {
	if c.Log != nil {
		c.Log.Error(c.T, format, args...)
	}
}

func (c *Context) tracef(format string, args ...interface{}) {
	if c.Log != nil {
		c.Log.Trace(c.T, format, args...)
	}
}
