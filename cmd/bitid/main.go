// Command bitid is a small demonstration client for the bitid package:
// it builds challenge URIs, renders their QR-code URL, and checks a
// returned (address, signature, uri) triple against a callback.
package main

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

import (
	"fmt"
	"os"

	"github.com/bfix/bitid/bitid"
	"github.com/bfix/bitid/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bitid",
	Short: "Build and verify BitID authentication challenges",
}

var buildURICmd = &cobra.Command{
	Use:   "build-uri <callback>",
	Short: "Build a fresh BitID challenge URI for a callback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uri, err := bitid.BuildURI(args[0])
		if err != nil {
			return err
		}
		fmt.Println(uri)
		return nil
	},
}

var qrcodeCmd = &cobra.Command{
	Use:   "qrcode <bitid-uri>",
	Short: "Print the QR-code rendering URL for a BitID URI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(bitid.QRCode(args[0]))
		return nil
	},
}

var (
	verifyCallback string
	verifyTestnet  bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify <address> <signature> <bitid-uri>",
	Short: "Check a returned (address, signature, uri) triple",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := bitid.ChallengeValid(args[0], args[1], args[2], verifyCallback, verifyTestnet)
		if !ok {
			fmt.Println("rejected")
			os.Exit(1)
		}
		fmt.Println("accepted")
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyCallback, "callback", "", "canonical callback URI the challenge was issued for")
	verifyCmd.Flags().BoolVar(&verifyTestnet, "testnet", false, "verify against testnet addresses")
	_ = verifyCmd.MarkFlagRequired("callback")

	rootCmd.AddCommand(buildURICmd, qrcodeCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Printf(logger.ERROR, "[bitid] %s\n", err.Error())
		os.Exit(1)
	}
}
