package holdem

import "github.com/sirupsen/logrus"

// logger returns the configured logger, or a discard logger if the
// hand was built without one (Config.validate fills this in, so this
// is only a defensive fallback for a HandState built without going
// through NewHand).
func (s *HandState) logger() *logrus.Logger {
	if s.config.Logger != nil {
		return s.config.Logger
	}
	return newDiscardLogger()
}

func (s *HandState) logf(level logrus.Level, fields logrus.Fields, msg string) {
	entry := s.logger().WithFields(fields).WithField("hand", s.handNumber)
	entry.Log(level, msg)
}
