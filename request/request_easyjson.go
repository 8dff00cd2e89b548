package request

import (
	json "encoding/json"

	easyjson "github.com/mailru/easyjson"
	jlexer "github.com/mailru/easyjson/jlexer"
	jwriter "github.com/mailru/easyjson/jwriter"
	decimal "github.com/shopspring/decimal"
)

// suppress unused package warning
var (
	_ *json.RawMessage
	_ *jlexer.Lexer
	_ *jwriter.Writer
	_ easyjson.Marshaler
)

func easyjson5a72dc82DecodeGithubComSoulgardenCbproRequest(in *jlexer.Lexer, out *Order) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "product_id":
			out.ProductID = string(in.String())
		case "side":
			out.Side = Side(in.String())
		case "type":
			out.Type = OrderType(in.String())
		case "size":
			if in.IsNull() {
				in.Skip()
				out.Size = nil
			} else {
				if out.Size == nil {
					out.Size = new(decimal.Decimal)
				}
				if data := in.Raw(); in.Ok() {
					in.AddError((*out.Size).UnmarshalJSON(data))
				}
			}
		case "funds":
			if in.IsNull() {
				in.Skip()
				out.Funds = nil
			} else {
				if out.Funds == nil {
					out.Funds = new(decimal.Decimal)
				}
				if data := in.Raw(); in.Ok() {
					in.AddError((*out.Funds).UnmarshalJSON(data))
				}
			}
		case "price":
			if in.IsNull() {
				in.Skip()
				out.Price = nil
			} else {
				if out.Price == nil {
					out.Price = new(decimal.Decimal)
				}
				if data := in.Raw(); in.Ok() {
					in.AddError((*out.Price).UnmarshalJSON(data))
				}
			}
		case "time_in_force":
			out.TimeInForce = TimeInForce(in.String())
		case "cancel_after":
			out.CancelAfter = CancelAfter(in.String())
		case "post_only":
			if in.IsNull() {
				in.Skip()
				out.PostOnly = nil
			} else {
				if out.PostOnly == nil {
					out.PostOnly = new(bool)
				}
				*out.PostOnly = bool(in.Bool())
			}
		case "overdraft_enabled":
			if in.IsNull() {
				in.Skip()
				out.OverdraftEnabled = nil
			} else {
				if out.OverdraftEnabled == nil {
					out.OverdraftEnabled = new(bool)
				}
				*out.OverdraftEnabled = bool(in.Bool())
			}
		case "funding_amount":
			if in.IsNull() {
				in.Skip()
				out.FundingAmount = nil
			} else {
				if out.FundingAmount == nil {
					out.FundingAmount = new(decimal.Decimal)
				}
				if data := in.Raw(); in.Ok() {
					in.AddError((*out.FundingAmount).UnmarshalJSON(data))
				}
			}
		case "client_oid":
			out.ClientOID = string(in.String())
		case "stp":
			out.STP = SelfTradePrevention(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func easyjson5a72dc82EncodeGithubComSoulgardenCbproRequest(out *jwriter.Writer, in Order) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"product_id\":"
		out.RawString(prefix[1:])
		out.String(string(in.ProductID))
	}
	{
		const prefix string = ",\"side\":"
		out.RawString(prefix)
		out.String(string(in.Side))
	}
	{
		const prefix string = ",\"type\":"
		out.RawString(prefix)
		out.String(string(in.Type))
	}
	if in.Size != nil {
		const prefix string = ",\"size\":"
		out.RawString(prefix)
		out.Raw((*in.Size).MarshalJSON())
	}
	if in.Funds != nil {
		const prefix string = ",\"funds\":"
		out.RawString(prefix)
		out.Raw((*in.Funds).MarshalJSON())
	}
	if in.Price != nil {
		const prefix string = ",\"price\":"
		out.RawString(prefix)
		out.Raw((*in.Price).MarshalJSON())
	}
	if in.TimeInForce != "" {
		const prefix string = ",\"time_in_force\":"
		out.RawString(prefix)
		out.String(string(in.TimeInForce))
	}
	if in.CancelAfter != "" {
		const prefix string = ",\"cancel_after\":"
		out.RawString(prefix)
		out.String(string(in.CancelAfter))
	}
	if in.PostOnly != nil {
		const prefix string = ",\"post_only\":"
		out.RawString(prefix)
		out.Bool(bool(*in.PostOnly))
	}
	if in.OverdraftEnabled != nil {
		const prefix string = ",\"overdraft_enabled\":"
		out.RawString(prefix)
		out.Bool(bool(*in.OverdraftEnabled))
	}
	if in.FundingAmount != nil {
		const prefix string = ",\"funding_amount\":"
		out.RawString(prefix)
		out.Raw((*in.FundingAmount).MarshalJSON())
	}
	if in.ClientOID != "" {
		const prefix string = ",\"client_oid\":"
		out.RawString(prefix)
		out.String(string(in.ClientOID))
	}
	if in.STP != "" {
		const prefix string = ",\"stp\":"
		out.RawString(prefix)
		out.String(string(in.STP))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v Order) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson5a72dc82EncodeGithubComSoulgardenCbproRequest(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v Order) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson5a72dc82EncodeGithubComSoulgardenCbproRequest(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Order) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson5a72dc82DecodeGithubComSoulgardenCbproRequest(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Order) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson5a72dc82DecodeGithubComSoulgardenCbproRequest(l, v)
}

func easyjson5a72dc82DecodeGithubComSoulgardenCbproRequest1(in *jlexer.Lexer, out *Subscribe) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "type":
			out.Type = string(in.String())
		case "product_ids":
			if in.IsNull() {
				in.Skip()
				out.ProductIDs = nil
			} else {
				in.Delim('[')
				if out.ProductIDs == nil {
					if !in.IsDelim(']') {
						out.ProductIDs = make([]string, 0, 4)
					} else {
						out.ProductIDs = []string{}
					}
				} else {
					out.ProductIDs = (out.ProductIDs)[:0]
				}
				for !in.IsDelim(']') {
					var v1 string
					v1 = string(in.String())
					out.ProductIDs = append(out.ProductIDs, v1)
					in.WantComma()
				}
				in.Delim(']')
			}
		case "channels":
			if in.IsNull() {
				in.Skip()
				out.Channels = nil
			} else {
				in.Delim('[')
				if out.Channels == nil {
					if !in.IsDelim(']') {
						out.Channels = make([]string, 0, 4)
					} else {
						out.Channels = []string{}
					}
				} else {
					out.Channels = (out.Channels)[:0]
				}
				for !in.IsDelim(']') {
					var v1 string
					v1 = string(in.String())
					out.Channels = append(out.Channels, v1)
					in.WantComma()
				}
				in.Delim(']')
			}
		case "signature":
			out.Signature = string(in.String())
		case "key":
			out.Key = string(in.String())
		case "passphrase":
			out.Passphrase = string(in.String())
		case "timestamp":
			out.Timestamp = string(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func easyjson5a72dc82EncodeGithubComSoulgardenCbproRequest1(out *jwriter.Writer, in Subscribe) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"type\":"
		out.RawString(prefix[1:])
		out.String(string(in.Type))
	}
	if len(in.ProductIDs) != 0 {
		const prefix string = ",\"product_ids\":"
		out.RawString(prefix)
		{
			out.RawByte('[')
			for v2, v3 := range in.ProductIDs {
				if v2 > 0 {
					out.RawByte(',')
				}
				out.String(string(v3))
			}
			out.RawByte(']')
		}
	}
	{
		const prefix string = ",\"channels\":"
		out.RawString(prefix)
		if in.Channels == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
			out.RawString("null")
		} else {
			out.RawByte('[')
			for v4, v5 := range in.Channels {
				if v4 > 0 {
					out.RawByte(',')
				}
				out.String(string(v5))
			}
			out.RawByte(']')
		}
	}
	if in.Signature != "" {
		const prefix string = ",\"signature\":"
		out.RawString(prefix)
		out.String(string(in.Signature))
	}
	if in.Key != "" {
		const prefix string = ",\"key\":"
		out.RawString(prefix)
		out.String(string(in.Key))
	}
	if in.Passphrase != "" {
		const prefix string = ",\"passphrase\":"
		out.RawString(prefix)
		out.String(string(in.Passphrase))
	}
	if in.Timestamp != "" {
		const prefix string = ",\"timestamp\":"
		out.RawString(prefix)
		out.String(string(in.Timestamp))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v Subscribe) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson5a72dc82EncodeGithubComSoulgardenCbproRequest1(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v Subscribe) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson5a72dc82EncodeGithubComSoulgardenCbproRequest1(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *Subscribe) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson5a72dc82DecodeGithubComSoulgardenCbproRequest1(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *Subscribe) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson5a72dc82DecodeGithubComSoulgardenCbproRequest1(l, v)
}
