package carrier

import (
	"fmt"
	"time"
)

// timestampLayout is the carrier's expected request timestamp format, local
// time with no zone designator.
const timestampLayout = "2006-01-02T15:04:05"

const addressSearchTemplate = `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:add="http://webservices.carrier.net/addressmatching">
  <soapenv:Header/>
  <soapenv:Body>
    <add:AddressSearchRequest>
      <add:RequesterID>%s</add:RequesterID>
      <add:RequestTimestamp>%s</add:RequestTimestamp>
      <add:SearchAddress>
        <add:SubPremises>null</add:SubPremises>
        <add:PremisesName>null</add:PremisesName>
        <add:ThoroughfareNumber>null</add:ThoroughfareNumber>
        <add:ThoroughfareName>null</add:ThoroughfareName>
        <add:Locality>null</add:Locality>
        <add:PostTown>null</add:PostTown>
        <add:County>null</add:County>
        <add:Postcode>%s</add:Postcode>
      </add:SearchAddress>
    </add:AddressSearchRequest>
  </soapenv:Body>
</soapenv:Envelope>`

const lineCharacteristicsTemplate = `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:lc="http://webservices.carrier.net/linecharacteristics">
  <soapenv:Header/>
  <soapenv:Body>
    <lc:LineCharacteristicsRequest>
      <lc:RequesterID>%s</lc:RequesterID>
      <lc:RequestTimestamp>%s</lc:RequestTimestamp>
      <lc:AddressReference>
        <lc:RefNum>%s</lc:RefNum>
        <lc:DistrictCode>%s</lc:DistrictCode>
      </lc:AddressReference>
    </lc:LineCharacteristicsRequest>
  </soapenv:Body>
</soapenv:Envelope>`

// buildAddressSearchEnvelope renders an address-search request for one
// postcode. Every other search field carries the carrier's null token, which
// its matcher treats as a wildcard.
func buildAddressSearchEnvelope(requesterID, postcode string, now time.Time) string {
	return fmt.Sprintf(addressSearchTemplate,
		xmlEscape(requesterID),
		now.Format(timestampLayout),
		xmlEscape(postcode),
	)
}

// buildLineCharacteristicsEnvelope renders a line-characteristics request
// for one address reference.
func buildLineCharacteristicsEnvelope(requesterID string, refNum, districtCode string, now time.Time) string {
	return fmt.Sprintf(lineCharacteristicsTemplate,
		xmlEscape(requesterID),
		now.Format(timestampLayout),
		xmlEscape(refNum),
		xmlEscape(districtCode),
	)
}
