package cli

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confideapp/confide/internal/draft"
	"github.com/confideapp/confide/internal/kv"
	"github.com/confideapp/confide/internal/model"
	"github.com/confideapp/confide/internal/vault"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage local confession drafts",
	Long: `Manage confession drafts stored locally. Drafts never leave this
machine until you post them; --seal encrypts one with a passphrase.`,
}

var draftSaveCmd = &cobra.Command{
	Use:   "save [content]",
	Short: "Save a new draft",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDraftSave,
}

var draftListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List drafts",
	RunE:    runDraftList,
}

var draftShowCmd = &cobra.Command{
	Use:   "show [draft-id]",
	Short: "Show a draft's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftShow,
}

var draftPostCmd = &cobra.Command{
	Use:   "post [draft-id]",
	Short: "Post a draft and delete it locally",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftPost,
}

var draftDeleteCmd = &cobra.Command{
	Use:     "delete [draft-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a draft",
	Args:    cobra.ExactArgs(1),
	RunE:    runDraftDelete,
}

var (
	draftMood string
	draftSeal bool
)

func init() {
	draftSaveCmd.Flags().StringVarP(&draftMood, "mood", "m", model.MoodNeutral, "Mood tag for the draft")
	draftSaveCmd.Flags().BoolVar(&draftSeal, "seal", false, "Encrypt the draft with a passphrase")

	draftCmd.AddCommand(draftSaveCmd)
	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftPostCmd)
	draftCmd.AddCommand(draftDeleteCmd)
}

const vaultSaltKey = "vault_salt"

// openVault derives the vault from a passphrase prompt. The salt is created
// on first use and kept in the state file.
func openVault(label string) (*vault.Vault, error) {
	statePath, err := kv.DefaultStatePath()
	if err != nil {
		return nil, err
	}
	store := kv.NewFileStore(statePath)

	var salt []byte
	if encoded, ok, err := store.Get(vaultSaltKey); err == nil && ok {
		salt, err = base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("corrupted vault salt: %w", err)
		}
	} else {
		salt, err = vault.GenerateSalt()
		if err != nil {
			return nil, err
		}
		if err := store.Set(vaultSaltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
			return nil, err
		}
	}

	passphrase := promptPassword(label)
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase required")
	}
	return vault.New(passphrase, salt), nil
}

func runDraftSave(cmd *cobra.Command, args []string) error {
	content := strings.Join(args, " ")
	if !model.ValidMood(draftMood) {
		return fmt.Errorf("unknown mood %q (one of: %s)", draftMood, strings.Join(model.Moods, ", "))
	}

	store, err := draft.OpenDefault()
	if err != nil {
		return err
	}
	defer store.Close()

	if draftSeal {
		v, err := openVault("Vault passphrase: ")
		if err != nil {
			return err
		}
		content, err = v.Seal([]byte(content))
		if err != nil {
			return fmt.Errorf("failed to seal draft: %w", err)
		}
	}

	ctx, cancel := requestContext()
	defer cancel()
	d, err := store.Save(ctx, draftMood, content, draftSeal)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Draft saved (id %s)\n", d.ID)
	return nil
}

func runDraftList(cmd *cobra.Command, args []string) error {
	store, err := draft.OpenDefault()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := requestContext()
	defer cancel()
	drafts, err := store.List(ctx)
	if err != nil {
		return err
	}

	if len(drafts) == 0 {
		fmt.Println("No drafts. Save one with: confide draft save \"...\"")
		return nil
	}

	fmt.Println("\n📝 Drafts")
	fmt.Println(strings.Repeat("─", 72))
	for _, d := range drafts {
		content := d.Content
		if d.Sealed {
			content = "(sealed)"
		} else if len(content) > 48 {
			content = content[:45] + "..."
		}
		shortID := d.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Printf("  %-8s  %-8s  %-48s  %s\n", shortID, d.Mood, content, d.UpdatedAt.Format("Jan 2 15:04"))
	}
	fmt.Println()
	return nil
}

// resolveDraft accepts full ids and unambiguous prefixes.
func resolveDraft(store *draft.Store, id string) (*draft.Draft, error) {
	ctx, cancel := requestContext()
	defer cancel()

	if d, err := store.Get(ctx, id); err == nil {
		return d, nil
	}

	drafts, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	var match *draft.Draft
	for i := range drafts {
		if strings.HasPrefix(drafts[i].ID, id) {
			if match != nil {
				return nil, fmt.Errorf("draft id %q is ambiguous", id)
			}
			match = &drafts[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("draft %s not found", id)
	}
	return match, nil
}

// draftContent returns the draft's plaintext, prompting for the vault
// passphrase when sealed.
func draftContent(d *draft.Draft) (string, error) {
	if !d.Sealed {
		return d.Content, nil
	}
	v, err := openVault("Vault passphrase: ")
	if err != nil {
		return "", err
	}
	plaintext, err := v.Open(d.Content)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func runDraftShow(cmd *cobra.Command, args []string) error {
	store, err := draft.OpenDefault()
	if err != nil {
		return err
	}
	defer store.Close()

	d, err := resolveDraft(store, args[0])
	if err != nil {
		return err
	}
	content, err := draftContent(d)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s  (%s)\n\n%s\n\n", d.ID, d.Mood, content)
	return nil
}

func runDraftPost(cmd *cobra.Command, args []string) error {
	client, sessions, err := newClient()
	if err != nil {
		return err
	}
	if !sessions.LoggedIn() {
		return fmt.Errorf("not logged in; run: confide auth login")
	}

	store, err := draft.OpenDefault()
	if err != nil {
		return err
	}
	defer store.Close()

	d, err := resolveDraft(store, args[0])
	if err != nil {
		return err
	}
	content, err := draftContent(d)
	if err != nil {
		return err
	}

	fmt.Println("🔄 Posting draft...")
	ctx, cancel := requestContext()
	defer cancel()
	conf, err := client.PostConfession(ctx, content, d.Mood)
	if err != nil {
		return err
	}

	// The local copy only goes away once the server accepted the post.
	if err := store.Delete(ctx, d.ID); err != nil {
		fmt.Printf("⚠️  Posted, but the local draft could not be removed: %v\n", err)
		return nil
	}

	fmt.Printf("✅ Confessed (%s, id %s)\n", conf.Mood, conf.ID)
	return nil
}

func runDraftDelete(cmd *cobra.Command, args []string) error {
	store, err := draft.OpenDefault()
	if err != nil {
		return err
	}
	defer store.Close()

	d, err := resolveDraft(store, args[0])
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()
	if err := store.Delete(ctx, d.ID); err != nil {
		return err
	}

	fmt.Println("🗑  Draft deleted.")
	return nil
}
