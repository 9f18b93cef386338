package transcript

import (
	"hireflow-be/internal/pkg/logger"
)

func testLogger() logger.ILogger {
	return logger.NewNopLogger()
}
