package ports

type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

type Toast struct {
	Level       ToastLevel
	Title       string
	Description string
}

type Notifier interface {
	Notify(toast Toast)
}
