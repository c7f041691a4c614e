package xslog

import (
	"log/slog"
	"runtime/debug"
	"time"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func ErrorAny(err any) slog.Attr {
	return slog.Any(keyError, err)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Tab(label string) slog.Attr {
	const tabKey = "tab"
	return slog.String(tabKey, label)
}

func HabitID(id string) slog.Attr {
	const habitIDKey = "habit_id"
	return slog.String(habitIDKey, id)
}

func Token(token string) slog.Attr {
	const tokenKey = "token"
	return slog.String(tokenKey, token)
}

func Target(target string) slog.Attr {
	const targetKey = "target"
	return slog.String(targetKey, target)
}

func Session(kind string) slog.Attr {
	const sessionKey = "session"
	return slog.String(sessionKey, kind)
}
