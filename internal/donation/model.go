package donation

import (
	"errors"
	"time"
)

type DonationStatus string

const (
	StatusPending  DonationStatus = "pending"
	StatusApproved DonationStatus = "approved"
	StatusRejected DonationStatus = "rejected"
)

func ValidStatus(s string) bool {
	switch DonationStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Donation struct {
	ID              uint           `json:"id"`
	FarmerID        uint           `json:"farmerId"`
	Images          []string       `json:"images"`
	AccountNumber   string         `json:"accountNumber"`
	IFSCCode        string         `json:"ifscCode"`
	BankHolderName  string         `json:"bankHolderName"`
	BankName        string         `json:"bankName"`
	BranchName      string         `json:"branchName"`
	DonationPurpose string         `json:"donationPurpose"`
	AmountRequired  float64        `json:"amountRequired"`
	Note            string         `json:"note"`
	Status          DonationStatus `json:"status"`

	// fundDistributed may only become true while status is approved; a
	// rejection always resets it, even retroactively.
	FundDistributed   bool       `json:"fundDistributed"`
	FundDistributedAt *time.Time `json:"fundDistributedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Joined farmer contact info for admin views.
	FarmerName  string `json:"farmerName,omitempty"`
	FarmerEmail string `json:"farmerEmail,omitempty"`
	FarmerPhone string `json:"farmerPhone,omitempty"`
}

var (
	ErrNotFound      = errors.New("donation not found")
	ErrInvalidStatus = errors.New("invalid donation status")
	ErrNotApproved   = errors.New("only approved donations can be marked as distributed")
	ErrMissingFields = errors.New("missing required donation fields")
	ErrNoImages      = errors.New("at least one image is required")
	ErrInvalidAmount = errors.New("amount required must be positive")
)
