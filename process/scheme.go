// Package process simulates one-dimensional Ito processes over a time grid.
//
// A Simulator steps forward through the grid, adding a drift and a diffusion
// increment at every step. The increments are supplied by a Scheme value, so
// the same stepping logic serves Euler, log-Euler and Milstein discretizations
// of a given dynamics. A scheme may additionally declare a transform pair
// (f, f^{-1}): the simulator then steps f^{-1}(X) internally and reports
// f of the stepped value, which is how the log-Euler scheme simulates log S
// while still returning S.
package process

import (
	"math"

	"github.com/meenmo/stochlib/randvar"
)

// Scheme supplies the drift and diffusion increments of a discretized process
// over the time step ending at timeIndex, both evaluated on the (inverse
// transformed) process value at timeIndex-1.
type Scheme interface {
	// Drift returns mu(X_{i-1}, t_i) * (t_i - t_{i-1}).
	Drift(last randvar.RandomVariable, timeIndex int, dt float64) randvar.RandomVariable
	// Diffusion returns the stochastic increment built from the Brownian
	// increment dW over the step.
	Diffusion(last randvar.RandomVariable, timeIndex int, dt float64, dW randvar.RandomVariable) randvar.RandomVariable
	// Transform maps the internally simulated value to the reported process value.
	Transform(x float64) float64
	// InverseTransform maps the reported process value back to the internally
	// simulated one. It must invert Transform exactly on reachable values.
	InverseTransform(x float64) float64
}

// identityTransform is embedded by schemes that simulate the process itself.
type identityTransform struct{}

func (identityTransform) Transform(x float64) float64        { return x }
func (identityTransform) InverseTransform(x float64) float64 { return x }

// eulerGBM is the Euler discretization of a geometric Brownian motion
// dS = mu*S dt + sigma*S dW.
type eulerGBM struct {
	identityTransform
	mu, sigma float64
}

// EulerGBM returns the Euler scheme for a geometric Brownian motion with the
// given drift rate and volatility.
func EulerGBM(mu, sigma float64) Scheme {
	return eulerGBM{mu: mu, sigma: sigma}
}

func (s eulerGBM) Drift(last randvar.RandomVariable, timeIndex int, dt float64) randvar.RandomVariable {
	return last.MultScalar(s.mu * dt)
}

func (s eulerGBM) Diffusion(last randvar.RandomVariable, timeIndex int, dt float64, dW randvar.RandomVariable) randvar.RandomVariable {
	return last.MultScalar(s.sigma).Mult(dW)
}

// logEulerGBM simulates the logarithm of a geometric Brownian motion, whose
// dynamics by Ito's formula are d(log S) = (mu - sigma^2/2) dt + sigma dW,
// and transforms back with the exponential. The log-process has constant
// coefficients, so the scheme is exact in distribution at every grid point.
type logEulerGBM struct {
	mu, sigma float64
}

// LogEulerGBM returns the log-Euler scheme for a geometric Brownian motion
// with the given drift rate and volatility.
func LogEulerGBM(mu, sigma float64) Scheme {
	return logEulerGBM{mu: mu, sigma: sigma}
}

func (s logEulerGBM) Drift(last randvar.RandomVariable, timeIndex int, dt float64) randvar.RandomVariable {
	return randvar.Constant((s.mu-0.5*s.sigma*s.sigma)*dt, last.Size())
}

func (s logEulerGBM) Diffusion(last randvar.RandomVariable, timeIndex int, dt float64, dW randvar.RandomVariable) randvar.RandomVariable {
	return dW.MultScalar(s.sigma)
}

func (s logEulerGBM) Transform(x float64) float64        { return math.Exp(x) }
func (s logEulerGBM) InverseTransform(x float64) float64 { return math.Log(x) }

// milsteinGBM is the Milstein discretization of a geometric Brownian motion:
// Euler plus the second order correction 1/2 sigma^2 S (dW^2 - dt).
type milsteinGBM struct {
	identityTransform
	mu, sigma float64
}

// MilsteinGBM returns the Milstein scheme for a geometric Brownian motion
// with the given drift rate and volatility.
func MilsteinGBM(mu, sigma float64) Scheme {
	return milsteinGBM{mu: mu, sigma: sigma}
}

func (s milsteinGBM) Drift(last randvar.RandomVariable, timeIndex int, dt float64) randvar.RandomVariable {
	return last.MultScalar(s.mu * dt)
}

func (s milsteinGBM) Diffusion(last randvar.RandomVariable, timeIndex int, dt float64, dW randvar.RandomVariable) randvar.RandomVariable {
	linear := last.MultScalar(s.sigma).Mult(dW)
	correction := dW.Squared().SubScalar(dt).Mult(last).MultScalar(0.5 * s.sigma * s.sigma)
	return linear.Add(correction)
}
