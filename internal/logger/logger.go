package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"crush-hub/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultLogger *zap.SugaredLogger
)

// GetLogLevelFromString 将字符串转换为日志级别
func GetLogLevelFromString(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel // 默认级别
	}
}

// outputPaths 根据配置决定日志输出位置
func outputPaths(cfg *config.LogConfig, isServerMode bool) []string {
	if cfg.Path == "console" || cfg.Path == "" {
		return []string{"stdout"}
	}
	// 确保日志目录存在
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "创建日志目录失败: %v\n", err)
		return []string{"stdout"}
	}
	// 服务器模式同时输出到控制台
	if isServerMode {
		return []string{"stdout", cfg.Path}
	}
	return []string{cfg.Path}
}

// InitLogger 根据运行模式初始化日志系统
// isServerMode: true表示HTTP服务器模式，false表示CLI模式
func InitLogger(cfg *config.LogConfig, isServerMode bool) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.Sampling = nil
	zc.Level = zap.NewAtomicLevelAt(GetLogLevelFromString(cfg.Level))
	zc.OutputPaths = outputPaths(cfg, isServerMode)
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		// 在日志系统初始化失败时，暂时使用标准错误输出
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		l = zap.NewNop()
	}
	defaultLogger = l.Sugar()
}

// Sync 刷新缓冲的日志
func Sync() {
	if defaultLogger != nil {
		_ = defaultLogger.Sync()
	}
}

// With 返回附带字段的日志器
func With(args ...interface{}) *zap.SugaredLogger {
	if defaultLogger == nil {
		return zap.NewNop().Sugar()
	}
	return defaultLogger.Desugar().WithOptions(zap.AddCallerSkip(-1)).Sugar().With(args...)
}

// Debug 输出调试日志
func Debug(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Debug(v...)
	}
}

// Debugf 输出格式化调试日志
func Debugf(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Debugf(format, v...)
	}
}

// Info 输出信息日志
func Info(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Info(v...)
	}
}

// Infof 输出格式化信息日志
func Infof(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Infof(format, v...)
	}
}

// Warn 输出警告日志
func Warn(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Warn(v...)
	}
}

// Warnf 输出格式化警告日志
func Warnf(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Warnf(format, v...)
	}
}

// Error 输出错误日志
func Error(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Error(v...)
	}
}

// Errorf 输出格式化错误日志
func Errorf(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Errorf(format, v...)
	}
}

// Fatal 输出致命错误日志并退出程序
func Fatal(v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Fatal(v...)
	} else {
		// 在日志系统未初始化时，使用标准错误输出
		fmt.Fprintln(os.Stderr, append([]interface{}{"FATAL:"}, v...)...)
		os.Exit(1)
	}
}

// Fatalf 输出格式化致命错误日志并退出程序
func Fatalf(format string, v ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Fatalf(format, v...)
	} else {
		// 在日志系统未初始化时，使用标准错误输出
		fmt.Fprintf(os.Stderr, "FATAL: "+format+"\n", v...)
		os.Exit(1)
	}
}
