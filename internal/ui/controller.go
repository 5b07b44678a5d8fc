package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nestjam/pariffiliator/internal/generator"
)

// DefaultCopiedFor - сколько держится отметка о копировании.
const DefaultCopiedFor = 2 * time.Second

// Generator создает ссылку по пользовательскому вводу.
type Generator interface {
	Generate(ctx context.Context, raw string) (generator.Link, error)
}

// Clipboard записывает текст в буфер обмена.
type Clipboard interface {
	WriteText(text string) error
}

// Controller связывает состояние интерфейса с генератором и буфером обмена.
// Одновременно выполняется не больше одной генерации.
type Controller struct {
	generator Generator
	clipboard Clipboard
	logger    *zap.Logger
	onChange  func(State)
	timer     *time.Timer
	state     State
	copiedFor time.Duration
	mu        sync.Mutex
}

// ControllerOption определяет опцию настройки контроллера.
type ControllerOption func(*Controller)

// WithCopiedFor задает время показа отметки о копировании.
func WithCopiedFor(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.copiedFor = d
	}
}

// WithOnChange задает функцию, которая вызывается после каждого изменения состояния.
// Функция вызывается под блокировкой и не должна обращаться к контроллеру.
func WithOnChange(fn func(State)) ControllerOption {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithControllerLogger задает логгер.
func WithControllerLogger(logger *zap.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController создает контроллер.
func NewController(gen Generator, clipboard Clipboard, options ...ControllerOption) *Controller {
	c := &Controller{
		generator: gen,
		clipboard: clipboard,
		logger:    zap.NewNop(),
		onChange:  func(State) {},
		copiedFor: DefaultCopiedFor,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// State возвращает текущее состояние.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetInput обновляет текст в поле ввода.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(InputChanged{Text: text})
}

// Generate запускает генерацию для текущего ввода и ждет ее завершения.
// Если генерация уже идет, вызов ничего не меняет.
func (c *Controller) Generate(ctx context.Context) State {
	c.mu.Lock()
	if c.state.Busy {
		s := c.state
		c.mu.Unlock()
		return s
	}
	c.apply(GenerateRequested{})
	input := c.state.Input
	c.mu.Unlock()

	link, err := c.generator.Generate(ctx, input)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.apply(GenerateFailed{Message: Message(err)})
	} else {
		c.apply(GenerateSucceeded{Link: link.Short})
	}
	return c.state
}

// Copy копирует готовую ссылку в буфер обмена. Без готовой ссылки ничего не делает.
func (c *Controller) Copy() error {
	const op = "copy"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Result == "" {
		return nil
	}

	if err := c.clipboard.WriteText(c.state.Result); err != nil {
		c.logger.Error("Failed to copy link", zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	c.apply(CopyRequested{})
	seq := c.state.CopySeq()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.copiedFor, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.apply(CopyFlagExpired{Seq: seq})
	})

	return nil
}

// Close останавливает отложенный сброс отметки о копировании.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) apply(a Action) {
	next := Reduce(c.state, a)
	if next == c.state {
		return
	}
	c.state = next
	c.onChange(next)
}
