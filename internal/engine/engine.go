// Package engine orchestrates classification, storage, and analytics.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Goutham-1610/finance-advisor/internal/classify"
	"github.com/Goutham-1610/finance-advisor/internal/model"
	"github.com/Goutham-1610/finance-advisor/internal/service"
)

// FinanceEngine wires the transaction store to the classifier and the
// analytic functions. Writes are synchronous: every mutation persists first,
// then retrains the classifier from the full history so the merchant map is
// never stale.
type FinanceEngine struct {
	store      service.Storage
	classifier *classify.Classifier
	rules      *classify.RuleTable
	model      classify.TrainedModel
}

// Option configures a FinanceEngine.
type Option func(*FinanceEngine)

// WithRules overrides the default merchant rule table.
func WithRules(rules *classify.RuleTable) Option {
	return func(e *FinanceEngine) { e.rules = rules }
}

// WithTrainedModel attaches an offline-trained categorizer consulted as a
// last resort.
func WithTrainedModel(m classify.TrainedModel) Option {
	return func(e *FinanceEngine) { e.model = m }
}

// New creates a FinanceEngine. Call Retrain (or AddTransaction, which
// retrains) before relying on merchant-history predictions.
func New(store service.Storage, opts ...Option) *FinanceEngine {
	e := &FinanceEngine{
		store:      store,
		classifier: classify.NewClassifier(),
		rules:      classify.NewRuleTable(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store exposes the underlying storage for plain CRUD passthrough.
func (e *FinanceEngine) Store() service.Storage {
	return e.store
}

// Retrain rebuilds the classifier's merchant history from every stored
// transaction.
func (e *FinanceEngine) Retrain(ctx context.Context) (classify.RetrainStats, error) {
	transactions, err := e.store.ListTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return classify.RetrainStats{}, fmt.Errorf("failed to load transactions for retrain: %w", err)
	}
	return e.classifier.Retrain(transactions), nil
}

// NewTransaction carries the caller-supplied fields for a new transaction.
// Nil Category or Type means "infer it".
type NewTransaction struct {
	Date     time.Time
	Category *model.Category
	Type     *model.TransactionType
	Merchant string
	Notes    string
	Tags     []string
	Amount   float64
}

// AddTransaction creates a transaction, classifying it when no category was
// supplied, and retrains the classifier afterwards.
func (e *FinanceEngine) AddTransaction(ctx context.Context, input NewTransaction) (*model.Transaction, error) {
	txnType := model.InferTransactionType(input.Amount)
	if input.Type != nil {
		// A supplied type is authoritative even when it disagrees with the sign.
		txnType = *input.Type
	}

	var (
		category   model.Category
		confidence float64
	)
	if input.Category != nil {
		category = *input.Category
		confidence = 1.0
	} else {
		prediction := e.SuggestCategory(input.Merchant, input.Amount)
		category = prediction.Category
		confidence = prediction.Confidence
	}

	txn := &model.Transaction{
		Date:       input.Date,
		Amount:     input.Amount,
		Merchant:   input.Merchant,
		Category:   category,
		Type:       txnType,
		Notes:      input.Notes,
		Tags:       input.Tags,
		Confidence: &confidence,
	}

	if _, err := e.store.InsertTransaction(ctx, txn); err != nil {
		return nil, err
	}

	if _, err := e.Retrain(ctx); err != nil {
		return nil, err
	}

	slog.Debug("added transaction",
		"id", txn.ID,
		"merchant", txn.Merchant,
		"category", txn.Category,
		"confidence", confidence)
	return txn, nil
}

// UpdateTransaction persists changes to a transaction and retrains the
// classifier. It reports false when the transaction does not exist.
func (e *FinanceEngine) UpdateTransaction(ctx context.Context, txn *model.Transaction) (bool, error) {
	updated, err := e.store.UpdateTransaction(ctx, txn)
	if err != nil || !updated {
		return updated, err
	}
	if _, err := e.Retrain(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// DeleteTransaction removes a transaction and retrains the classifier.
// It reports false when the transaction does not exist.
func (e *FinanceEngine) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	deleted, err := e.store.DeleteTransaction(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	if _, err := e.Retrain(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// SuggestCategory resolves a category for a (merchant, amount) pair. The rule
// table wins over merchant history and keywords; the trained model is
// consulted only when every heuristic falls through to the sign default, and
// a model failure degrades to (Other Expense, 0) rather than an error.
func (e *FinanceEngine) SuggestCategory(merchant string, amount float64) classify.Prediction {
	if category, ok := e.rules.Match(merchant); ok {
		return classify.Prediction{Category: category, Confidence: classify.RuleConfidence}
	}

	prediction := e.classifier.Predict(merchant, amount)
	if prediction.Confidence > classify.FallbackConfidence || e.model == nil {
		return prediction
	}

	modelPrediction, err := e.predictWithModel(merchant, amount)
	if err != nil {
		slog.Warn("trained model prediction failed", "merchant", merchant, "error", err)
		return classify.Prediction{Category: model.CategoryOtherExpense, Confidence: 0}
	}
	if modelPrediction != nil {
		return *modelPrediction
	}
	return prediction
}

// predictWithModel calls the trained model, converting panics into errors so
// a broken model never aborts transaction creation.
func (e *FinanceEngine) predictWithModel(merchant string, amount float64) (p *classify.Prediction, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()
	return e.model.Predict(merchant, amount)
}
