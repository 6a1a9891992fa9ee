// Package pipeline wires the daily show steps together: collect the day's
// movers and news, generate a script, and gate it through the quality
// validator. The cmd binaries run single steps off the work queues; the
// scheduler runs the whole chain in-process.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/csaunders4z/market-voice-sub001/internal/config"
	"github.com/csaunders4z/market-voice-sub001/internal/model"
	"github.com/csaunders4z/market-voice-sub001/internal/repository"
	"github.com/csaunders4z/market-voice-sub001/pkg/llm"
	"github.com/csaunders4z/market-voice-sub001/pkg/market"
	"github.com/csaunders4z/market-voice-sub001/pkg/quality"
)

type Pipeline struct {
	cfg       *config.Config
	movers    []market.MoverClient
	news      market.NewsClient
	generator llm.ScriptClient
	scripts   *repository.ScriptRepository
	reports   *repository.ReportRepository
	moverRepo *repository.MoverRepository
}

func New(
	cfg *config.Config,
	movers []market.MoverClient,
	news market.NewsClient,
	generator llm.ScriptClient,
	scripts *repository.ScriptRepository,
	reports *repository.ReportRepository,
	moverRepo *repository.MoverRepository,
) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		movers:    movers,
		news:      news,
		generator: generator,
		scripts:   scripts,
		reports:   reports,
		moverRepo: moverRepo,
	}
}

// TradingDay truncates a timestamp to the date the show covers.
func TradingDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Collect fetches the day's top movers from the first provider that answers,
// persists them, and attaches recent news per symbol.
func (p *Pipeline) Collect(day time.Time) error {
	var winners, losers []market.Mover
	var lastErr error

	for _, client := range p.movers {
		var err error
		winners, losers, err = client.TopMovers(p.cfg.Market.TopCount)
		if err != nil {
			slog.Error("error fetching movers", "source", client.Name(), "error", err)
			lastErr = err
			continue
		}
		slog.Info("movers fetched", "source", client.Name(), "winners", len(winners), "losers", len(losers))
		break
	}

	if len(winners) == 0 && len(losers) == 0 {
		if lastErr != nil {
			return fmt.Errorf("all mover sources failed: %w", lastErr)
		}
		return fmt.Errorf("no movers available for %s", day.Format("2006-01-02"))
	}

	var stored []model.MarketMover
	for _, m := range winners {
		stored = append(stored, toStoredMover(day, m, model.DirectionWinner))
	}
	for _, m := range losers {
		stored = append(stored, toStoredMover(day, m, model.DirectionLoser))
	}

	if err := p.moverRepo.SaveMovers(day, stored); err != nil {
		return fmt.Errorf("saving movers: %w", err)
	}

	if p.news != nil {
		p.collectNews(day, stored)
	}

	return nil
}

func toStoredMover(day time.Time, m market.Mover, direction string) model.MarketMover {
	return model.MarketMover{
		TradingDay: day,
		Symbol:     m.Symbol,
		Company:    m.Company,
		Price:      m.Price,
		ChangePct:  m.ChangePct,
		Direction:  direction,
		Source:     m.Source,
	}
}

func (p *Pipeline) collectNews(day time.Time, movers []model.MarketMover) {
	from := day.AddDate(0, 0, -1)

	for _, m := range movers {
		articles, err := p.news.CompanyNews(m.Symbol, from, day)
		if err != nil {
			slog.Error("error fetching company news", "symbol", m.Symbol, "error", err)
			continue
		}

		var saved, duplicated int
		for _, a := range articles {
			article := model.MarketArticle{
				Symbol:      a.Symbol,
				Headline:    a.Headline,
				Detail:      a.Detail,
				URL:         a.URL,
				Source:      a.Source,
				Publisher:   a.Publisher,
				PublishedAt: a.PublishedAt,
				ExternalID:  a.ExternalID,
			}

			ok, err := p.moverRepo.SaveArticle(&article)
			if err != nil {
				slog.Error("error saving article", "symbol", m.Symbol, "error", err)
				continue
			}
			if !ok {
				duplicated++
				continue
			}
			saved++
		}

		slog.Info("company news stored", "symbol", m.Symbol, "saved", saved, "duplicated", duplicated)
	}
}

// Generate builds the day's prompt from stored movers and news, calls the
// model, and persists the raw script in pending state.
func (p *Pipeline) Generate(day time.Time) (*model.BroadcastScript, error) {
	movers, err := p.moverRepo.GetMoversForDay(day)
	if err != nil {
		return nil, fmt.Errorf("loading movers: %w", err)
	}
	if len(movers) == 0 {
		return nil, fmt.Errorf("no movers stored for %s, run collect first", day.Format("2006-01-02"))
	}

	lead, co := p.cfg.Show.HostsFor(day.Weekday())
	rules := quality.LoadRulesDoc(p.cfg.Rules.Document, day.Weekday())

	input := llm.ScriptInput{
		AirDate:       day,
		LeadHost:      lead,
		CoHost:        co,
		TargetMinutes: int(rules.TargetRuntimeMinutes),
	}

	for _, m := range movers {
		brief := llm.MoverBrief{
			Symbol:    m.Symbol,
			Company:   m.Company,
			Price:     m.Price,
			ChangePct: m.ChangePct,
			Headlines: p.headlinesFor(m.Symbol),
		}
		if m.Direction == model.DirectionWinner {
			input.Winners = append(input.Winners, brief)
		} else {
			input.Losers = append(input.Losers, brief)
		}
	}

	result, err := p.generator.GenerateScript(input)
	if err != nil {
		return nil, fmt.Errorf("generating script: %w", err)
	}

	script := &model.BroadcastScript{
		AirDate:       day,
		RawText:       result.Script,
		LeadHost:      lead,
		CoHost:        co,
		TargetMinutes: input.TargetMinutes,
		PromptVersion: result.PromptVersion,
		ModelUsed:     result.ModelUsed,
	}

	if err := p.scripts.SaveScript(script); err != nil {
		return nil, fmt.Errorf("saving script: %w", err)
	}

	slog.Info("script generated", "script_id", script.ID, "air_date", day.Format("2006-01-02"), "model", result.ModelUsed)
	return script, nil
}

func (p *Pipeline) headlinesFor(symbol string) []string {
	articles, err := p.moverRepo.GetArticlesForSymbol(symbol, p.cfg.Market.NewsPerSymbol)
	if err != nil {
		slog.Error("error loading articles", "symbol", symbol, "error", err)
		return nil
	}

	var headlines []string
	for _, a := range articles {
		headlines = append(headlines, a.Headline)
	}
	return headlines
}

// Validate runs the quality gate over a stored script and records the
// verdict. A ParseError marks the script failed and is returned to the
// caller: an unparseable script is a different outcome from a script that
// validated and missed the bar.
func (p *Pipeline) Validate(scriptID int64, factualFlags []string) (*model.ScriptReport, error) {
	script, err := p.scripts.GetByID(scriptID)
	if err != nil {
		return nil, fmt.Errorf("loading script %d: %w", scriptID, err)
	}
	if script == nil {
		return nil, fmt.Errorf("script %d not found", scriptID)
	}

	rules := quality.LoadRulesDoc(p.cfg.Rules.Document, script.AirDate.Weekday())
	validator, err := quality.NewValidator(rules)
	if err != nil {
		return nil, fmt.Errorf("building validator: %w", err)
	}

	parserCfg := quality.ParserConfig{LeadHost: script.LeadHost, CoHost: script.CoHost}
	report, err := validator.ValidateText(script.RawText, parserCfg, factualFlags)

	var parseErr *quality.ParseError
	if errors.As(err, &parseErr) {
		if dbErr := p.scripts.SaveError(scriptID, parseErr.Error(), "parse_error"); dbErr != nil {
			slog.Error("error recording parse error", "script_id", scriptID, "error", dbErr)
		}
		if dbErr := p.scripts.UpdateStatus(scriptID, model.StatusFailed); dbErr != nil {
			slog.Error("error marking script failed", "script_id", scriptID, "error", dbErr)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	stored := &model.ScriptReport{ScriptID: scriptID, Report: *report}
	if err := p.reports.SaveReport(stored); err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}

	status := model.StatusRejected
	if report.Pass {
		status = model.StatusValidated
	}
	if err := p.scripts.UpdateStatus(scriptID, status); err != nil {
		return nil, fmt.Errorf("updating script status: %w", err)
	}

	slog.Info("script validated",
		"script_id", scriptID,
		"score", report.OverallScore,
		"pass", report.Pass,
		"status", status,
	)
	return stored, nil
}

// RunDaily executes collect, generate and validate for one day. Weekends are
// skipped; there is no show without a trading session.
func (p *Pipeline) RunDaily(now time.Time) error {
	day := TradingDay(now)

	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		slog.Info("no show on weekends, skipping run", "day", day.Format("2006-01-02"))
		return nil
	}

	if err := p.Collect(day); err != nil {
		return fmt.Errorf("collect step: %w", err)
	}

	script, err := p.Generate(day)
	if err != nil {
		return fmt.Errorf("generate step: %w", err)
	}

	if _, err := p.Validate(script.ID, nil); err != nil {
		return fmt.Errorf("validate step: %w", err)
	}

	return nil
}
