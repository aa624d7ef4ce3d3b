package mailer

import (
	"fmt"

	mlog "github.com/wneessen/go-mail/log"

	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

// debugLogger forwards the go-mail client log to a [models.DebugSink].
type debugLogger struct {
	level int
	sink  models.DebugSink
}

func newDebugLogger(level int, sink models.DebugSink) mlog.Logger {
	return &debugLogger{level: level, sink: sink}
}

func (d *debugLogger) Debugf(l mlog.Log) { d.forward(l) }
func (d *debugLogger) Infof(l mlog.Log)  { d.forward(l) }
func (d *debugLogger) Warnf(l mlog.Log)  { d.forward(l) }
func (d *debugLogger) Errorf(l mlog.Log) { d.forward(l) }

// Level 1 shows client commands only, level 2 and above add server replies.
func (d *debugLogger) forward(l mlog.Log) {
	if d.level < 2 && l.Direction != mlog.DirClientToServer {
		return
	}

	prefix := "C <-- S:"
	if l.Direction == mlog.DirClientToServer {
		prefix = "C --> S:"
	}
	d.sink.Debug(d.level, prefix+" "+fmt.Sprintf(l.Format, l.Messages...))
}

// LoggerSink writes SMTP debug lines to the service log.
type LoggerSink struct {
	logger *logger.Logger
}

// NewLoggerSink returns a sink tagged with the mailer component.
func NewLoggerSink(log *logger.Logger) *LoggerSink {
	return &LoggerSink{logger: log.WithComponent(logger.Component)}
}

func (s *LoggerSink) Debug(level int, message string) {
	s.logger.Debug().Int("smtp_debug_level", level).Msg(fmt.Sprintf("[SMTP debug %d]: %s", level, message))
}
