package seal

import (
	"bytes"
	"fmt"

	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	aes_sivpb "github.com/tink-crypto/tink-go/v2/proto/aes_siv_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"

	"google.golang.org/protobuf/proto"
)

const sivTypeURL = "type.googleapis.com/google.crypto.tink.AesSivKey"

// sealKeyset wraps a derived AES-SIV key in a single-key cleartext keyset.
// The key ID is the envelope version the key was derived for. Output is RAW
// since the envelope header already frames every sealed value.
func sealKeyset(sivKey []byte, version byte) (*keyset.Handle, error) {
	if len(sivKey) != AesSivKeySize {
		return nil, fmt.Errorf("%w: derived key is %d bytes, want %d", ErrKey, len(sivKey), AesSivKeySize)
	}

	value, err := proto.Marshal(&aes_sivpb.AesSivKey{KeyValue: sivKey})
	if err != nil {
		return nil, fmt.Errorf("serializing AES-SIV key: %w", err)
	}

	id := uint32(version)

	serialized, err := proto.Marshal(&tinkpb.Keyset{
		PrimaryKeyId: id,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         sivTypeURL,
				Value:           value,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			Status:           tinkpb.KeyStatusType_ENABLED,
			KeyId:            id,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("serializing seal keyset: %w", err)
	}

	handle, err := insecurecleartextkeyset.Read(keyset.NewBinaryReader(bytes.NewReader(serialized)))
	if err != nil {
		return nil, fmt.Errorf("reading seal keyset: %w", err)
	}

	return handle, nil
}
