// Package gateway фоновая сверка ожидающих PIX платежей со статусами платежного шлюза.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 5 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultLimitPerIteration uint = 50
	defaultWorkers           uint = 5
	defaultPollInterval           = 30 * time.Second
)

// Processor периодически опрашивает шлюз по ожидающим PIX платежам. Подстраховка на случай потерянных
// уведомлений (webhook).
type Processor struct {
	client            StatusChecker
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	pollInterval      time.Duration
}

// NewProcessor создает новый экземпляр процессора сверки платежей.
func NewProcessor(svs Servicer, client StatusChecker, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "gateway",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
		pollInterval:      defaultPollInterval,
	}
}

// SetLimitPerIteration устанавливает кол-во платежей, проверяемых в одной итерации.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

// SetWorkers устанавливает кол-во воркеров, параллельно опрашивающих шлюз.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// SetPollInterval устанавливает паузу между итерациями.
func (p *Processor) SetPollInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.pollInterval = interval
	}
	return p
}

// Run запускает сверку в цикле до отмены контекста.
//
// Алгоритм работы:
//  1. Запрашивает через сервисный слой ожидающие платежи (не больше SetLimitPerIteration, самые давно
//     проверенные первыми).
//  2. N воркеров (SetWorkers) запрашивают статус каждого платежа в шлюзе по external_reference.
//  3. Результаты передаются в сервисный слой, который переводит заказы с финальным статусом.
//  4. Пауза pollInterval (с разбросом), чтоб не заддосить шлюз.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
		"pollInterval":      p.pollInterval,
	}).Info("Starting")

	for {
		if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoPayments) {
			p.l.WithError(err).Error("process error")
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(jitterDuration(p.pollInterval)):
		}
	}
}

// process один цикл сверки. Возвращает ErrNoPayments, если проверять нечего.
func (p *Processor) process(ctx context.Context) error {
	payments, paymentsErr := p.produce(ctx)
	if paymentsErr != nil {
		return fmt.Errorf("process: %w", paymentsErr)
	}

	updates := p.runWorkers(ctx, payments)
	if len(updates) == 0 {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if updErr := p.svs.ApplyGatewayStatuses(reqCtx, updates); updErr != nil {
		return fmt.Errorf("process: %s", updErr.Error())
	}
	return nil
}

// runWorkers fan-out/fan-in: раздает платежи воркерам и собирает результаты.
func (p *Processor) runWorkers(ctx context.Context, payments []domain.Payment) []service.GatewayStatusUpdate {
	var taskCh = make(chan *domain.Payment, len(payments))
	for i := range payments {
		taskCh <- &payments[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.workers)) // nolint:gosec

	var resultCh = make(chan service.GatewayStatusUpdate, len(payments))
	for i := range p.workers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var results = make([]service.GatewayStatusUpdate, 0, len(payments))
	for result := range resultCh {
		l := p.l.WithField("orderID", result.Payment.OrderID)
		if result.Error != nil {
			l.WithError(result.Error).Warn("check payment status")
		} else {
			l.WithField("status", result.Result.Status).Debug("payment status checked")
		}
		results = append(results, result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.Payment,
	resultCh chan<- service.GatewayStatusUpdate,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			p.l.WithFields(logrus.Fields{"worker": workerID, "orderID": task.OrderID}).Trace("checking")
			resultCh <- p.check(ctx, task)
		}
	}
}

func (p *Processor) check(ctx context.Context, payment *domain.Payment) service.GatewayStatusUpdate {
	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	defer cancel()

	res, err := p.client.CheckStatus(reqCtx, payment.OrderID.String())
	return service.GatewayStatusUpdate{
		Payment: *payment,
		Result:  res,
		Error:   err,
	}
}

// produce возвращает платежи для сверки или ErrNoPayments.
func (p *Processor) produce(ctx context.Context) ([]domain.Payment, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	payments, err := p.svs.PendingGatewayPayments(produceCtx, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(payments) == 0 {
		return nil, ErrNoPayments
	}
	return payments, nil
}
