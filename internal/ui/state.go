package ui

// Надписи интерфейса.
const (
	GenerateLabel   = "GENERATE"
	GeneratingLabel = "GENERATING..."
	CopyLabel       = "Copy Link"
	CopiedLabel     = "Copied!"
)

// Phase - этап работы интерфейса.
type Phase int

const (
	Idle Phase = iota
	Busy
	Success
	Error
)

func (p Phase) String() string {
	switch p {
	case Busy:
		return "busy"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// State - состояние интерфейса генерации ссылки.
type State struct {
	Input   string // текст в поле ввода
	Result  string // готовая ссылка
	Error   string // сообщение об ошибке для пользователя
	Copied  bool   // ссылка только что скопирована
	Busy    bool   // идет генерация
	copySeq uint64
}

// Phase возвращает текущий этап.
func (s State) Phase() Phase {
	switch {
	case s.Busy:
		return Busy
	case s.Error != "":
		return Error
	case s.Result != "":
		return Success
	default:
		return Idle
	}
}

// ButtonLabel возвращает надпись кнопки генерации.
func (s State) ButtonLabel() string {
	if s.Busy {
		return GeneratingLabel
	}
	return GenerateLabel
}

// CopyButtonLabel возвращает надпись кнопки копирования.
func (s State) CopyButtonLabel() string {
	if s.Copied {
		return CopiedLabel
	}
	return CopyLabel
}

// Action - событие, которое меняет состояние.
type Action interface {
	action()
}

// InputChanged - пользователь изменил текст.
type InputChanged struct {
	Text string
}

// GenerateRequested - пользователь запросил генерацию.
type GenerateRequested struct{}

// GenerateSucceeded - генерация завершилась ссылкой.
type GenerateSucceeded struct {
	Link string
}

// GenerateFailed - ввод отклонен.
type GenerateFailed struct {
	Message string
}

// CopyRequested - пользователь скопировал ссылку.
type CopyRequested struct{}

// CopyFlagExpired - истекло время показа отметки о копировании.
type CopyFlagExpired struct {
	Seq uint64
}

func (InputChanged) action()      {}
func (GenerateRequested) action() {}
func (GenerateSucceeded) action() {}
func (GenerateFailed) action()    {}
func (CopyRequested) action()     {}
func (CopyFlagExpired) action()   {}

// Reduce возвращает состояние после события a. Функция не имеет побочных эффектов.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case InputChanged:
		s.Input = a.Text
		if !s.Busy {
			s.Result = ""
			s.Error = ""
			s.Copied = false
		}
	case GenerateRequested:
		if s.Busy {
			return s
		}
		s.Result = ""
		s.Error = ""
		s.Copied = false
		s.Busy = true
	case GenerateSucceeded:
		s.Result = a.Link
		s.Error = ""
		s.Busy = false
	case GenerateFailed:
		s.Result = ""
		s.Error = a.Message
		s.Busy = false
	case CopyRequested:
		if s.Result == "" {
			return s
		}
		s.Copied = true
		s.copySeq++
	case CopyFlagExpired:
		if a.Seq == s.copySeq {
			s.Copied = false
		}
	}
	return s
}

// CopySeq возвращает номер последнего копирования. Передается в CopyFlagExpired.
func (s State) CopySeq() uint64 {
	return s.copySeq
}
