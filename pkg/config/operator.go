package config

import (
	"github.com/ethereum/go-ethereum/common"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ECDSAKeyConfig points at the operator key. Exactly one of PrivateKey or
// KeystoreFile is set.
type ECDSAKeyConfig struct {
	PrivateKey   string `json:"privateKey,omitempty" yaml:"privateKey,omitempty"`
	KeystoreFile string `json:"keystoreFile,omitempty" yaml:"keystoreFile,omitempty"`
	Password     string `json:"password,omitempty" yaml:"password,omitempty"`
}

func (ek *ECDSAKeyConfig) Validate() error {
	var allErrors field.ErrorList
	if ek.PrivateKey == "" && ek.KeystoreFile == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("privateKey"), "privateKey or keystoreFile is required"))
	}
	if ek.PrivateKey != "" && ek.KeystoreFile != "" {
		allErrors = append(allErrors, field.Invalid(field.NewPath("keystoreFile"), ek.KeystoreFile, "only one of privateKey or keystoreFile may be set"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

type OperatorConfig struct {
	Address     string          `json:"address,omitempty" yaml:"address,omitempty"`
	MetadataUri string          `json:"metadataUri,omitempty" yaml:"metadataUri,omitempty"`
	SigningKey  *ECDSAKeyConfig `json:"signingKey" yaml:"signingKey"`
}

func (oc *OperatorConfig) Validate() error {
	var allErrors field.ErrorList
	if oc.Address != "" && !common.IsHexAddress(oc.Address) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("address"), oc.Address, "address must be a hex address"))
	}
	if oc.SigningKey == nil {
		allErrors = append(allErrors, field.Required(field.NewPath("signingKey"), "signingKey is required"))
	} else if err := oc.SigningKey.Validate(); err != nil {
		allErrors = append(allErrors, field.Invalid(field.NewPath("signingKey"), "", err.Error()))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}
