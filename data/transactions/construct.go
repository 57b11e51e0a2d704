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
	"github.com/winder/go-algorand-lib/crypto"
	"github.com/winder/go-algorand-lib/data/basics"
	"github.com/winder/go-algorand-lib/protocol"
)

// TxnWindow describes the round validity window requested for a new
// transaction.  LastValid may be zero, in which case the transaction is
// given the widest window the protocol allows: FirstValid + MaxTxnLife.
type TxnWindow struct {
	FirstValid basics.Round
	LastValid  basics.Round
}

// resolve fills in a missing LastValid and checks the window against the
// protocol bounds.
func (w TxnWindow) resolve(proto config.ConsensusParams) (basics.Round, basics.Round, error) {
	last := w.LastValid
	if last == 0 {
		last = w.FirstValid + basics.Round(proto.MaxTxnLife)
	}
	if last <= w.FirstValid {
		return 0, 0, fmt.Errorf("transaction last valid round %d is not after first valid round %d", last, w.FirstValid)
	}
	if last-w.FirstValid > basics.Round(proto.MaxTxnLife) {
		return 0, 0, fmt.Errorf("transaction window size excessive (%d--%d)", w.FirstValid, last)
	}
	return w.FirstValid, last, nil
}

// makeHeader assembles a transaction header, enforcing the minimum fee and
// the validity window bounds.
func makeHeader(sender basics.Address, fee basics.MicroAlgos, window TxnWindow, note []byte, genesisHash crypto.Digest, proto config.ConsensusParams) (Header, error) {
	if sender.IsZero() {
		return Header{}, fmt.Errorf("transaction cannot have zero sender")
	}
	if fee.Raw < proto.MinTxnFee {
		return Header{}, makeMinFeeErrorf("transaction had fee %d, which is less than the minimum %d", fee.Raw, proto.MinTxnFee)
	}
	first, last, err := window.resolve(proto)
	if err != nil {
		return Header{}, err
	}
	return Header{
		Sender:      sender,
		Fee:         fee,
		FirstValid:  first,
		LastValid:   last,
		Note:        note,
		GenesisHash: genesisHash,
	}, nil
}

// MakePaymentTxn creates a payment transaction, moving amount MicroAlgos
// from sender to receiver.  If closeTo is nonzero the sender's account is
// closed out and its remaining balance is sent there; otherwise the amount
// must meet the protocol's minimum payment amount.
func MakePaymentTxn(sender, receiver basics.Address, amount, fee basics.MicroAlgos, window TxnWindow, note []byte, closeTo basics.Address, genesisHash crypto.Digest, proto config.ConsensusParams) (Transaction, error) {
	header, err := makeHeader(sender, fee, window, note, genesisHash, proto)
	if err != nil {
		return Transaction{}, err
	}
	if closeTo.IsZero() && amount.Raw < proto.MinTxnAmount {
		return Transaction{}, fmt.Errorf("payment amount %d is less than the minimum %d", amount.Raw, proto.MinTxnAmount)
	}
	return Transaction{
		Type:   protocol.PaymentTx,
		Header: header,
		PaymentTxnFields: PaymentTxnFields{
			Receiver:         receiver,
			Amount:           amount,
			CloseRemainderTo: closeTo,
		},
	}, nil
}

// MakeKeyregTxn creates a key registration transaction marking the sender
// as online with the given participation keys, or offline when the keys
// are zero.
func MakeKeyregTxn(sender basics.Address, fee basics.MicroAlgos, window TxnWindow, note []byte, genesisHash crypto.Digest, keyreg KeyregTxnFields, proto config.ConsensusParams) (Transaction, error) {
	header, err := makeHeader(sender, fee, window, note, genesisHash, proto)
	if err != nil {
		return Transaction{}, err
	}
	tx := Transaction{
		Type:            protocol.KeyRegistrationTx,
		Header:          header,
		KeyregTxnFields: keyreg,
	}
	if err := tx.KeyregTxnFields.wellFormed(tx.Header); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// MakeAssetConfigTxn creates an asset configuration transaction.  A zero
// configAsset allocates a new asset with the given parameters; a nonzero
// configAsset reconfigures (or, with zero parameters, destroys) an
// existing asset.
func MakeAssetConfigTxn(sender basics.Address, fee basics.MicroAlgos, window TxnWindow, note []byte, genesisHash crypto.Digest, configAsset basics.AssetIndex, params basics.AssetParams, proto config.ConsensusParams) (Transaction, error) {
	header, err := makeHeader(sender, fee, window, note, genesisHash, proto)
	if err != nil {
		return Transaction{}, err
	}
	fields := AssetConfigTxnFields{
		ConfigAsset: configAsset,
		AssetParams: params,
	}
	if err := fields.wellFormed(proto); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		Type:                 protocol.AssetConfigTx,
		Header:               header,
		AssetConfigTxnFields: fields,
	}, nil
}

// MakeAssetTransferTxn creates a transaction transferring amount units of
// xferAsset from sender to receiver.  If closeTo is nonzero the sender's
// holding of the asset is removed and any remainder sent there.
func MakeAssetTransferTxn(sender, receiver basics.Address, xferAsset basics.AssetIndex, amount uint64, fee basics.MicroAlgos, window TxnWindow, note []byte, closeTo basics.Address, genesisHash crypto.Digest, proto config.ConsensusParams) (Transaction, error) {
	header, err := makeHeader(sender, fee, window, note, genesisHash, proto)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		Type:   protocol.AssetTransferTx,
		Header: header,
		AssetTransferTxnFields: AssetTransferTxnFields{
			XferAsset:     xferAsset,
			AssetAmount:   amount,
			AssetReceiver: receiver,
			AssetCloseTo:  closeTo,
		},
	}, nil
}

// MakeAssetOptInTxn creates a zero-amount self-transfer of xferAsset,
// which allocates a holding of the asset in the sender's account.
func MakeAssetOptInTxn(sender basics.Address, xferAsset basics.AssetIndex, fee basics.MicroAlgos, window TxnWindow, note []byte, genesisHash crypto.Digest, proto config.ConsensusParams) (Transaction, error) {
	return MakeAssetTransferTxn(sender, sender, xferAsset, 0, fee, window, note, basics.Address{}, genesisHash, proto)
}

// MakeAssetFreezeTxn creates a transaction freezing or unfreezing
// freezeAccount's holding of freezeAsset.  The sender must be the asset's
// freeze address for the transaction to be valid on the ledger.
func MakeAssetFreezeTxn(sender basics.Address, fee basics.MicroAlgos, window TxnWindow, note []byte, genesisHash crypto.Digest, freezeAccount basics.Address, freezeAsset basics.AssetIndex, frozen bool, proto config.ConsensusParams) (Transaction, error) {
	header, err := makeHeader(sender, fee, window, note, genesisHash, proto)
	if err != nil {
		return Transaction{}, err
	}
	fields := AssetFreezeTxnFields{
		FreezeAccount: freezeAccount,
		FreezeAsset:   freezeAsset,
		AssetFrozen:   frozen,
	}
	if err := fields.wellFormed(); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		Type:                 protocol.AssetFreezeTx,
		Header:               header,
		AssetFreezeTxnFields: fields,
	}, nil
}
