// Copyright (C) 2019-2023 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package transactions

import (
	"fmt"

	"github.com/winder/go-algorand-lib/config"
	"github.com/winder/go-algorand-lib/data/basics"
)

// AssetConfigTxnFields captures the fields used for asset
// allocation, re-configuration, and destruction.
type AssetConfigTxnFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	// ConfigAsset is the asset being configured or destroyed.
	// A zero value means allocation
	ConfigAsset basics.AssetIndex `codec:"caid"`

	// AssetParams are the parameters for the asset being
	// created or re-configured.  A zero value means destruction.
	AssetParams basics.AssetParams `codec:"apar"`
}

// AssetTransferTxnFields captures the fields used for asset transfers.
type AssetTransferTxnFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	XferAsset basics.AssetIndex `codec:"xaid"`

	// AssetAmount is the amount of asset to transfer.
	// A zero amount transferred to self allocates that asset
	// in the account's Assets map.
	AssetAmount uint64 `codec:"aamt"`

	// AssetSender is the sender of the transfer.  If this is not
	// a zero value, the real transaction sender must be the Clawback
	// address from the AssetParams.  If this is the zero value,
	// the asset is sent from the transaction's Sender.
	AssetSender basics.Address `codec:"asnd"`

	// AssetReceiver is the recipient of the transfer.
	AssetReceiver basics.Address `codec:"arcv"`

	// AssetCloseTo indicates that the asset should be removed
	// from the account's Assets map, and specifies where the remaining
	// asset holdings should be transferred.  It's always valid to transfer
	// remaining asset holdings to the creator account.
	AssetCloseTo basics.Address `codec:"aclose"`
}

// AssetFreezeTxnFields captures the fields used for freezing asset slots.
type AssetFreezeTxnFields struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	// FreezeAccount is the address of the account whose asset
	// slot is being frozen or un-frozen.
	FreezeAccount basics.Address `codec:"fadd"`

	// FreezeAsset is the asset ID being frozen or un-frozen.
	FreezeAsset basics.AssetIndex `codec:"faid"`

	// AssetFrozen is the new frozen value.
	AssetFrozen bool `codec:"afrz"`
}

// wellFormed performs stateless checks on asset allocation,
// re-configuration, and destruction transactions.
func (cc AssetConfigTxnFields) wellFormed(proto config.ConsensusParams) error {
	if cc.ConfigAsset == 0 {
		// Creating an asset; the parameters must fit within
		// the protocol limits.
		if len(cc.AssetParams.AssetName) > proto.MaxAssetNameBytes {
			return fmt.Errorf("transaction asset name too big: %d > %d", len(cc.AssetParams.AssetName), proto.MaxAssetNameBytes)
		}
		if len(cc.AssetParams.UnitName) > proto.MaxAssetUnitNameBytes {
			return fmt.Errorf("transaction asset unit name too big: %d > %d", len(cc.AssetParams.UnitName), proto.MaxAssetUnitNameBytes)
		}
		if len(cc.AssetParams.URL) > proto.MaxAssetURLBytes {
			return fmt.Errorf("transaction asset url too big: %d > %d", len(cc.AssetParams.URL), proto.MaxAssetURLBytes)
		}
		if cc.AssetParams.Decimals > proto.MaxAssetDecimals {
			return fmt.Errorf("transaction asset decimals is too high (max is %d)", proto.MaxAssetDecimals)
		}
	}
	return nil
}

// wellFormed performs stateless checks on asset transfers.
func (ct AssetTransferTxnFields) wellFormed() error {
	if ct.XferAsset == 0 && ct != (AssetTransferTxnFields{}) {
		return fmt.Errorf("asset ID cannot be zero")
	}
	if ct.AssetSender != (basics.Address{}) && ct.AssetCloseTo != (basics.Address{}) {
		// The clawback transaction cannot close out the holding.
		return fmt.Errorf("cannot close asset by clawback")
	}
	return nil
}

// wellFormed performs stateless checks on asset freeze transactions.
func (cf AssetFreezeTxnFields) wellFormed() error {
	if cf.FreezeAsset == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	if cf.FreezeAccount.IsZero() {
		return fmt.Errorf("freeze account cannot be empty")
	}
	return nil
}
