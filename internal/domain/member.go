package domain

import (
	"fmt"
	"strings"
	"time"
)

type MemberTier string

const (
	MemberTierStandard MemberTier = "STANDARD"
	MemberTierSilver   MemberTier = "SILVER"
	MemberTierGold     MemberTier = "GOLD"
	MemberTierDiamond  MemberTier = "DIAMOND"
)

// ParseMemberTier converts a case-insensitive tier name to a MemberTier.
func ParseMemberTier(s string) (MemberTier, error) {
	switch t := MemberTier(strings.ToUpper(s)); t {
	case MemberTierStandard, MemberTierSilver, MemberTierGold, MemberTierDiamond:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown member tier %q", ErrInvalidInput, s)
}

// Member is the club member as the ledger sees it. Identity fields (UserRef,
// FullName, AvatarURL) are owned by the external profile provider; balance and
// spend fields are owned by the wallet and mutated only inside its transactions.
type Member struct {
	ID                 int64      `json:"id"`
	UserRef            string     `json:"user_ref"`
	FullName           string     `json:"full_name"`
	Email              *string    `json:"email,omitempty"`
	JoinDate           time.Time  `json:"join_date"`
	RankLevel          float64    `json:"rank_level"`
	IsActive           bool       `json:"is_active"`
	WalletBalanceCents int64      `json:"wallet_balance_cents"`
	TotalSpentCents    int64      `json:"total_spent_cents"`
	Tier               MemberTier `json:"tier"`
	AvatarURL          *string    `json:"avatar_url,omitempty"`
	CreatedOn          time.Time  `json:"created_on"`
	UpdatedOn          time.Time  `json:"updated_on"`
}
