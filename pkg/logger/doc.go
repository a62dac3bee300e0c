// Package logger builds *slog.Logger values from functional options.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("identclean")),
//	)
//	log.Debug("cleaned", logger.Kind("css"), logger.Input(raw), logger.Output(class))
//
// Output defaults to text at INFO level on stderr. Helpers in attr.go keep
// attribute keys consistent across commands.
package logger
