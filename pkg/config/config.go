package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

type ChainId uint

const (
	ChainId_EthereumMainnet ChainId = 1
	ChainId_EthereumHolesky ChainId = 17000
	ChainId_EthereumHoodi   ChainId = 560048
	ChainId_EthereumSepolia ChainId = 11155111
	ChainId_EthereumAnvil   ChainId = 31337
)

var (
	SupportedChainIds = []ChainId{
		ChainId_EthereumMainnet,
		ChainId_EthereumHolesky,
		ChainId_EthereumHoodi,
		ChainId_EthereumSepolia,
		ChainId_EthereumAnvil,
	}
)

func IsSupportedChainId(chainId ChainId) bool {
	return slices.Contains(SupportedChainIds, chainId)
}

var kebabRegex = regexp.MustCompile(`-`)

// KebabToSnakeCase converts flag names to the keys viper stores them under.
func KebabToSnakeCase(str string) string {
	return kebabRegex.ReplaceAllString(str, "_")
}

func NormalizeFlagName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

const (
	deploymentDirCore              = "core"
	deploymentDirImageVerification = "image-verification"
)

type coreDeploymentFile struct {
	Addresses struct {
		Delegation   string `json:"delegation"`
		AvsDirectory string `json:"avsDirectory"`
	} `json:"addresses"`
}

type avsDeploymentFile struct {
	Addresses struct {
		ImageVerificationServiceManager string `json:"imageVerificationServiceManager"`
		StakeRegistry                   string `json:"stakeRegistry"`
	} `json:"addresses"`
}

// DeploymentAddresses is the address bundle of every contract the operator talks to.
type DeploymentAddresses struct {
	DelegationManager               common.Address `json:"delegationManager"`
	AvsDirectory                    common.Address `json:"avsDirectory"`
	ImageVerificationServiceManager common.Address `json:"imageVerificationServiceManager"`
	StakeRegistry                   common.Address `json:"stakeRegistry"`
}

func (da *DeploymentAddresses) Validate() error {
	missing := make([]string, 0)
	if da.DelegationManager == (common.Address{}) {
		missing = append(missing, "delegationManager")
	}
	if da.AvsDirectory == (common.Address{}) {
		missing = append(missing, "avsDirectory")
	}
	if da.ImageVerificationServiceManager == (common.Address{}) {
		missing = append(missing, "imageVerificationServiceManager")
	}
	if da.StakeRegistry == (common.Address{}) {
		missing = append(missing, "stakeRegistry")
	}
	if len(missing) > 0 {
		return fmt.Errorf("deployment addresses missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// LoadDeploymentAddresses reads <dir>/core/<chainId>.json and
// <dir>/image-verification/<chainId>.json.
func LoadDeploymentAddresses(deploymentsDir string, chainId ChainId) (*DeploymentAddresses, error) {
	corePath := filepath.Join(deploymentsDir, deploymentDirCore, fmt.Sprintf("%d.json", chainId))
	coreBytes, err := os.ReadFile(corePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read core deployment file %s", corePath)
	}
	var core coreDeploymentFile
	if err := yaml.Unmarshal(coreBytes, &core); err != nil {
		return nil, errors.Wrapf(err, "failed to parse core deployment file %s", corePath)
	}

	avsPath := filepath.Join(deploymentsDir, deploymentDirImageVerification, fmt.Sprintf("%d.json", chainId))
	avsBytes, err := os.ReadFile(avsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read avs deployment file %s", avsPath)
	}
	var avs avsDeploymentFile
	if err := yaml.Unmarshal(avsBytes, &avs); err != nil {
		return nil, errors.Wrapf(err, "failed to parse avs deployment file %s", avsPath)
	}

	addresses := &DeploymentAddresses{
		DelegationManager:               common.HexToAddress(core.Addresses.Delegation),
		AvsDirectory:                    common.HexToAddress(core.Addresses.AvsDirectory),
		ImageVerificationServiceManager: common.HexToAddress(avs.Addresses.ImageVerificationServiceManager),
		StakeRegistry:                   common.HexToAddress(avs.Addresses.StakeRegistry),
	}
	if err := addresses.Validate(); err != nil {
		return nil, err
	}
	return addresses, nil
}
