package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"github.com/vitaliy-ukiru/fsm-telebot/storages/memory"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/intersched/internal/availability"
	"github.com/nikmy/intersched/internal/matcher"
	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
)

const (
	initialState = fsm.DefaultState

	matchReadJobState       fsm.State = "matchReadJob"
	matchReadCandidateState fsm.State = "matchReadCandidate"
)

const jobKey = "job"

const usage = "" +
	"Доступные команды:\n" +
	"/jobs — список вакансий\n" +
	"/match — подобрать время собеседования для кандидата\n"

var dayNames = map[availability.Weekday]string{
	availability.Monday:    "Пн",
	availability.Tuesday:   "Вт",
	availability.Wednesday: "Ср",
	availability.Thursday:  "Чт",
	availability.Friday:    "Пт",
}

func (b *Bot) setupHandlers() {
	manager := fsm.NewManager(
		b.bot,
		nil,
		memory.NewStorage(),
		nil,
	)

	manager.Bind(telebot.OnText, initialState, b.start)
	manager.Bind("/start", fsm.AnyState, b.start)

	manager.Bind("/jobs", fsm.AnyState, b.listJobs)

	manager.Bind("/match", fsm.AnyState, b.startMatch)
	manager.Bind(telebot.OnText, matchReadJobState, b.matchReadJob)
	manager.Bind(telebot.OnText, matchReadCandidateState, b.match)
}

func (b *Bot) setState(s fsm.Context, target fsm.State) {
	err := s.Set(target)
	if err != nil {
		b.log.Warn(errors.WrapFailf(err, "set state to \"%s\"", target))
	}
}

func (b *Bot) final(c telebot.Context, s fsm.Context, msg string, opts ...any) error {
	b.setState(s, initialState)
	return c.Send(msg, opts...)
}

func (b *Bot) fail(c telebot.Context, s fsm.Context, err error) error {
	b.log.Error(err)
	return b.final(c, s, "Что-то пошло не так")
}

func (b *Bot) start(c telebot.Context, s fsm.Context) error {
	return b.final(c, s, usage)
}

func (b *Bot) listJobs(c telebot.Context, s fsm.Context) error {
	jobs, err := b.repo.Jobs().List(b.ctx)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "list jobs"))
	}

	if len(jobs) == 0 {
		return b.final(c, s, "Вакансий пока нет")
	}

	var sb strings.Builder
	sb.WriteString("Вакансии:\n")
	for _, job := range jobs {
		fmt.Fprintf(&sb, "%d — %s\n", job.ID, job.Name)
	}

	return b.final(c, s, sb.String())
}

func (b *Bot) startMatch(c telebot.Context, s fsm.Context) error {
	b.setState(s, matchReadJobState)
	return c.Send("Введите ID вакансии")
}

func readID(c telebot.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Text()), 10, 64)
	return id, err == nil && id > 0
}

func (b *Bot) matchReadJob(c telebot.Context, s fsm.Context) error {
	jobID, ok := readID(c)
	if !ok {
		return c.Send("ID должен быть положительным числом, попробуйте ещё раз")
	}

	job, err := b.repo.Jobs().Get(b.ctx, jobID)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "get job"))
	}

	if job == nil {
		return b.final(c, s, "Такой вакансии нет")
	}

	err = s.Update(jobKey, jobID)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "update state with job id"))
	}

	b.setState(s, matchReadCandidateState)
	return c.Send(fmt.Sprintf("Вакансия «%s». Введите ID кандидата", job.Name))
}

func (b *Bot) match(c telebot.Context, s fsm.Context) error {
	candidateID, ok := readID(c)
	if !ok {
		return c.Send("ID должен быть положительным числом, попробуйте ещё раз")
	}

	var jobID int64
	err := s.Get(jobKey, &jobID)
	if err != nil {
		b.log.Debug(err)
		return b.final(c, s, "Ошибка, попробуйте ещё раз")
	}

	res, err := b.sched.Schedule(b.ctx, jobID, candidateID)
	if errors.Is(err, models.ErrNotFound) {
		return b.final(c, s, "Кандидат не указал доступное время для этой вакансии")
	}
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "schedule interview"))
	}

	return b.final(c, s, describe(res))
}

func describe(res matcher.Result) string {
	switch res.Kind {
	case matcher.Matched:
		var sb strings.Builder
		sb.WriteString("Общее свободное время:\n")
		for _, day := range res.Slots.Days() {
			hours := make([]string, 0, len(res.Slots[day]))
			for _, h := range res.Slots[day] {
				hours = append(hours, fmt.Sprintf("%02d:00", h))
			}
			fmt.Fprintf(&sb, "%s: %s\n", dayName(day), strings.Join(hours, ", "))
		}
		return sb.String()
	case matcher.NoCommonDays:
		return "Нет дней, в которые свободны и кандидат, и все интервьюеры"
	default:
		return fmt.Sprintf("Нет общего свободного времени: %s", dayName(res.Day))
	}
}

func dayName(d availability.Weekday) string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return string(d)
}
