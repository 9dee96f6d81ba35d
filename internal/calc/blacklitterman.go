package calc

import (
	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/linalg"
)

// BlackLitterman blends market-equilibrium returns with investor views.
// Sigma is the asset covariance (symmetric, caller-checked), P maps views
// to assets, Q holds view returns, and Omega is the diagonal
// view-uncertainty matrix. P, Q and Omega may all be nil for a no-view
// run, which reproduces the equilibrium.
type BlackLitterman struct {
	RiskAversion  decimal.Decimal
	Tau           decimal.Decimal
	Sigma         *linalg.Matrix
	MarketWeights linalg.Vector
	P             *linalg.Matrix
	Q             linalg.Vector
	Omega         *linalg.Matrix
}

// BLResult annotates the posterior portfolio.
type BLResult struct {
	Equilibrium       linalg.Vector // implied excess returns Pi
	Posterior         linalg.Vector // blended expected returns
	Weights           linalg.Vector // unconstrained optimal weights
	PortfolioVariance decimal.Decimal
}

func (bl *BlackLitterman) Validate() error {
	if bl.RiskAversion.Sign() <= 0 {
		return invalidf("risk aversion must be positive, got %s", bl.RiskAversion)
	}
	if bl.Tau.Sign() <= 0 {
		return invalidf("tau must be positive, got %s", bl.Tau)
	}
	if bl.Sigma == nil || bl.Sigma.Rows() != bl.Sigma.Cols() {
		return invalidf("covariance must be square")
	}
	if len(bl.MarketWeights) != bl.Sigma.Rows() {
		return invalidf("market weights length %d does not match %d assets",
			len(bl.MarketWeights), bl.Sigma.Rows())
	}
	if bl.P != nil {
		if bl.P.Cols() != bl.Sigma.Rows() {
			return invalidf("view matrix has %d columns for %d assets", bl.P.Cols(), bl.Sigma.Rows())
		}
		if len(bl.Q) != bl.P.Rows() {
			return invalidf("view returns length %d does not match %d views", len(bl.Q), bl.P.Rows())
		}
		if bl.Omega == nil || bl.Omega.Rows() != bl.P.Rows() {
			return invalidf("view uncertainty must be %d x %d", bl.P.Rows(), bl.P.Rows())
		}
	}
	return nil
}

// Compute runs the blend: Pi = lambda*Sigma*w_mkt, then the posterior
//
//	mu = [(tau*Sigma)^-1 + P' Omega^-1 P]^-1 [(tau*Sigma)^-1 Pi + P' Omega^-1 Q]
//
// with Omega inverted through the O(n) diagonal fast path, and finally
// unconstrained weights w = (lambda*Sigma)^-1 mu and variance w' Sigma w.
func (bl *BlackLitterman) Compute() (*BLResult, error) {
	if err := bl.Validate(); err != nil {
		return nil, err
	}

	pi, err := bl.Sigma.Scale(bl.RiskAversion).MulVec(bl.MarketWeights)
	if err != nil {
		return nil, err
	}

	posterior := pi
	if bl.P != nil && bl.P.Rows() > 0 {
		tauSigmaInv, err := bl.Sigma.Scale(bl.Tau).Inverse()
		if err != nil {
			return nil, err
		}
		omegaInv, err := bl.Omega.InverseDiagonal()
		if err != nil {
			return nil, err
		}

		// P' Omega^-1
		ptOmega, err := bl.P.Transpose().Mul(omegaInv)
		if err != nil {
			return nil, err
		}
		// A = (tau*Sigma)^-1 + P' Omega^-1 P
		ptOmegaP, err := ptOmega.Mul(bl.P)
		if err != nil {
			return nil, err
		}
		a, err := tauSigmaInv.Add(ptOmegaP)
		if err != nil {
			return nil, err
		}

		// b = (tau*Sigma)^-1 Pi + P' Omega^-1 Q
		left, err := tauSigmaInv.MulVec(pi)
		if err != nil {
			return nil, err
		}
		right, err := ptOmega.MulVec(bl.Q)
		if err != nil {
			return nil, err
		}
		b, err := left.Add(right)
		if err != nil {
			return nil, err
		}

		aInv, err := a.Inverse()
		if err != nil {
			return nil, err
		}
		posterior, err = aInv.MulVec(b)
		if err != nil {
			return nil, err
		}
	}

	lambdaSigmaInv, err := bl.Sigma.Scale(bl.RiskAversion).Inverse()
	if err != nil {
		return nil, err
	}
	weights, err := lambdaSigmaInv.MulVec(posterior)
	if err != nil {
		return nil, err
	}

	sigmaW, err := bl.Sigma.MulVec(weights)
	if err != nil {
		return nil, err
	}
	variance, err := weights.Dot(sigmaW)
	if err != nil {
		return nil, err
	}

	return &BLResult{
		Equilibrium:       pi,
		Posterior:         posterior,
		Weights:           weights,
		PortfolioVariance: variance,
	}, nil
}
