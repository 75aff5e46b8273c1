package bdd

// debugf logs a formatted debug-level trace of a store operation. It is a
// no-op unless the store was built with WithLogger: the teacher gated this
// the same way, behind a package-level _DEBUG/_LOGLEVEL pair and the stdlib
// log package; here the gate is a nil check and the sink is zap instead.
func (s *Store) debugf(format string, args ...interface{}) {
	if s.conf.logger == nil {
		return
	}
	s.conf.logger.Debugf(format, args...)
}

// tracef additionally requires the package to have been built with the
// "debug" tag (see trace_on.go / trace_off.go), matching the teacher's
// _LOGLEVEL > 0 guard around its hottest allocation path. It exists
// separately from debugf because it fires on every node allocation:
// enabling it unconditionally would make WithLogger alone too expensive for
// routine use.
func (s *Store) tracef(format string, args ...interface{}) {
	if !_TRACE || s.conf.logger == nil {
		return
	}
	s.conf.logger.Debugf(format, args...)
}
