package telegram

import (
	"context"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/intersched/internal/matcher"
	"github.com/nikmy/intersched/internal/repo/models"
	"github.com/nikmy/intersched/pkg/errors"
	"github.com/nikmy/intersched/pkg/logger"
)

//go:generate mockgen -destination=mocks_test.go -package=telegram . Scheduler

type Scheduler interface {
	Schedule(ctx context.Context, jobID int64, candidateID int64) (matcher.Result, error)
}

func New(
	log logger.Logger,
	conf Config,
	repo models.Client,
	sched Scheduler,
) (*Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   conf.Token,
		Updates: 256,
		Poller: &telebot.LongPoller{
			Timeout: conf.PollInterval,
		},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	return &Bot{
		bot:   b,
		repo:  repo,
		sched: sched,
		log:   log.With("telegram_bot"),
	}, nil
}

type Bot struct {
	bot *telebot.Bot
	ctx context.Context

	repo  models.Client
	sched Scheduler

	log logger.Logger
}

func (b *Bot) Run(ctx context.Context) {
	b.ctx = ctx
	b.setupHandlers()
	go b.bot.Start()
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
