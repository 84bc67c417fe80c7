// ABOUTME: Wire-format entity types mirroring the banking API's JSON shapes
// ABOUTME: Records are server-owned; the client round-trips them without loss

package model

// AccountType enumerates the account products the server offers.
type AccountType string

const (
	AccountSavings      AccountType = "savings"
	AccountCurrent      AccountType = "current"
	AccountFixedDeposit AccountType = "fixed_deposit"
)

// TransactionType enumerates ledger entry categories.
type TransactionType string

const (
	TxnTransfer       TransactionType = "transfer"
	TxnMutualFundBuy  TransactionType = "mutual_fund_buy"
	TxnMutualFundSell TransactionType = "mutual_fund_sell"
	TxnDepositCreate  TransactionType = "deposit_create"
	TxnDepositCancel  TransactionType = "deposit_cancel"
	TxnAdjustment     TransactionType = "adjustment"
)

// TransactionStatus enumerates settlement states.
type TransactionStatus string

const (
	TxnSuccess TransactionStatus = "success"
	TxnFailed  TransactionStatus = "failed"
	TxnPending TransactionStatus = "pending"
)

// CardStatus enumerates debit card lifecycle states.
type CardStatus string

const (
	CardPending  CardStatus = "pending"
	CardActive   CardStatus = "active"
	CardDisabled CardStatus = "disabled"
)

// DepositType enumerates term deposit products.
type DepositType string

const (
	DepositFixed     DepositType = "fixed"
	DepositRecurring DepositType = "recurring"
)

// DepositStatus enumerates term deposit lifecycle states.
type DepositStatus string

const (
	DepositActive    DepositStatus = "active"
	DepositCancelled DepositStatus = "cancelled"
	DepositMatured   DepositStatus = "matured"
)

// TradeType enumerates mutual fund trade directions.
type TradeType string

const (
	TradeBuy  TradeType = "buy"
	TradeSell TradeType = "sell"
)

// User is an operator or customer record. Soft-deleted users stay visible
// with is_active false.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Address   string `json:"address"`
	IsActive  bool   `json:"is_active"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

// Account balances are authoritative only on the server; the client never
// computes them.
type Account struct {
	ID            int64       `json:"id"`
	AccountNumber string      `json:"account_number"`
	UserID        int64       `json:"user_id"`
	AccountType   AccountType `json:"account_type"`
	BankName      string      `json:"bank_name"`
	IFSCCode      string      `json:"ifsc_code"`
	Balance       float64     `json:"balance"`
	IsActive      bool        `json:"is_active"`
	IsDeleted     bool        `json:"is_deleted"`
	CreatedAt     string      `json:"created_at"`
}

// Transaction is immutable except for description and status, which are
// admin-editable.
type Transaction struct {
	ID               int64             `json:"id"`
	FromAccountID    *int64            `json:"from_account_id"`
	ToAccountID      *int64            `json:"to_account_id"`
	TransactionType  TransactionType   `json:"transaction_type"`
	Amount           float64           `json:"amount"`
	Description      string            `json:"description"`
	ExternalBankName *string           `json:"external_bank_name"`
	Status           TransactionStatus `json:"status"`
	Reference        string            `json:"reference"`
	CreatedAt        string            `json:"created_at"`
}

// DebitCard is created in pending state and activated with an OTP the
// server issues once at creation time.
type DebitCard struct {
	ID             int64      `json:"id"`
	AccountID      int64      `json:"account_id"`
	CardNumber     string     `json:"card_number"`
	Status         CardStatus `json:"status"`
	ActivationDate *string    `json:"activation_date"`
	ExpiryDate     string     `json:"expiry_date"`
}

// Fund NAV is mutated only by admin action, independently of trades.
type Fund struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	NAV      float64 `json:"nav"`
	IsActive bool    `json:"is_active"`
}

// Holding is derived server-side from trades; read-only to the client.
type Holding struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	AccountID  int64   `json:"account_id"`
	FundID     int64   `json:"fund_id"`
	Units      float64 `json:"units"`
	AverageNAV float64 `json:"average_nav"`
}

// Trade is append-only.
type Trade struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	AccountID int64     `json:"account_id"`
	FundID    int64     `json:"fund_id"`
	TradeType TradeType `json:"trade_type"`
	NAV       float64   `json:"nav"`
	Units     float64   `json:"units"`
	Amount    float64   `json:"amount"`
	CreatedAt string    `json:"created_at"`
}

// Deposit transitions active -> cancelled (with penalty) or matured.
type Deposit struct {
	ID            int64         `json:"id"`
	AccountID     int64         `json:"account_id"`
	DepositType   DepositType   `json:"deposit_type"`
	TermMonths    int           `json:"term_months"`
	Amount        float64       `json:"amount"`
	InterestRate  float64       `json:"interest_rate"`
	Status        DepositStatus `json:"status"`
	StartDate     string        `json:"start_date"`
	MaturityDate  string        `json:"maturity_date"`
	PenaltyAmount *float64      `json:"penalty_amount"`
}

// AuditLogEntry is append-only and admin-visible only. Details is a
// free-form object the server attaches per action.
type AuditLogEntry struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  *int64         `json:"entity_id"`
	Details   map[string]any `json:"details"`
	CreatedAt string         `json:"created_at"`
}
