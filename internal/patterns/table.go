package patterns

// ocrEntries is the ordered OCR correction table. Order matters: long-s
// fixes run first because they turn garbled tokens into recognizable
// words that later li/h and ll-U passes can then match on. The table is
// representative of each category rather than exhaustive — it is meant
// to be extended as new corpus samples surface new OCR artifacts.
var ocrEntries = []Entry{
	// -- long_s: the long-s (ſ) misread as f, and its common-word fallout --
	{CategoryLongS, "long_s_literal", `ſ`, "s"},
	{CategoryLongS, "fuch_such", `(?i)\bfuch\b`, "such"},
	{CategoryLongS, "fome_some", `(?i)\bfome\b`, "some"},
	{CategoryLongS, "fame_same", `(?i)\bfame\b`, "same"},
	{CategoryLongS, "faid_said", `(?i)\bfaid\b`, "said"},
	{CategoryLongS, "fays_says", `(?i)\bfays\b`, "says"},
	{CategoryLongS, "fay_say", `(?i)\bfay\b`, "say"},
	{CategoryLongS, "faw_saw", `(?i)\bfaw\b`, "saw"},
	{CategoryLongS, "fee_see", `(?i)\bfee\b`, "see"},
	{CategoryLongS, "feen_seen", `(?i)\bfeen\b`, "seen"},
	{CategoryLongS, "feems_seems", `(?i)\bfeems\b`, "seems"},
	{CategoryLongS, "feem_seem", `(?i)\bfeem\b`, "seem"},
	{CategoryLongS, "felf_self", `(?i)\bfelf\b`, "self"},
	{CategoryLongS, "fent_sent", `(?i)\bfent\b`, "sent"},
	{CategoryLongS, "fet_set", `(?i)\bfet\b`, "set"},
	{CategoryLongS, "fhall_shall", `(?i)\bfhall\b`, "shall"},
	{CategoryLongS, "fhould_should", `(?i)\bfhould\b`, "should"},
	{CategoryLongS, "fhe_she", `(?i)\bfhe\b`, "she"},
	{CategoryLongS, "fide_side", `(?i)\bfide\b`, "side"},
	{CategoryLongS, "fince_since", `(?i)\bfince\b`, "since"},
	{CategoryLongS, "fir_sir", `(?i)\bfir\b`, "sir"},
	{CategoryLongS, "fmall_small", `(?i)\bfmall\b`, "small"},
	{CategoryLongS, "fo_so", `(?i)\bfo\b`, "so"},
	{CategoryLongS, "fon_son", `(?i)\bfon\b`, "son"},
	{CategoryLongS, "foon_soon", `(?i)\bfoon\b`, "soon"},
	{CategoryLongS, "foul_soul", `(?i)\bfoul\b`, "soul"},
	{CategoryLongS, "fpeak_speak", `(?i)\bfpeak\b`, "speak"},
	{CategoryLongS, "fpoke_spoke", `(?i)\bfpoke\b`, "spoke"},
	{CategoryLongS, "ftand_stand", `(?i)\bftand\b`, "stand"},
	{CategoryLongS, "ftate_state", `(?i)\bftate\b`, "state"},
	{CategoryLongS, "ftates_states", `(?i)\bftates\b`, "states"},
	{CategoryLongS, "ftill_still", `(?i)\bftill\b`, "still"},
	{CategoryLongS, "ftood_stood", `(?i)\bftood\b`, "stood"},
	{CategoryLongS, "ftrong_strong", `(?i)\bftrong\b`, "strong"},
	{CategoryLongS, "fubject_subject", `(?i)\bfubject\b`, "subject"},
	{CategoryLongS, "fuffer_suffer", `(?i)\bfuffer\b`, "suffer"},
	{CategoryLongS, "fupport_support", `(?i)\bfupport\b`, "support"},
	{CategoryLongS, "fure_sure", `(?i)\bfure\b`, "sure"},
	{CategoryLongS, "fyftem_system", `(?i)\bfyftem\b`, "system"},
	{CategoryLongS, "himfelf_himself", `(?i)\bhimfelf\b`, "himself"},
	{CategoryLongS, "herfelf_herself", `(?i)\bherfelf\b`, "herself"},
	{CategoryLongS, "itfelf_itself", `(?i)\bitfelf\b`, "itself"},
	{CategoryLongS, "myfelf_myself", `(?i)\bmyfelf\b`, "myself"},
	{CategoryLongS, "yourfelf_yourself", `(?i)\byourfelf\b`, "yourself"},
	{CategoryLongS, "themfelves_themselves", `(?i)\bthemfelves\b`, "themselves"},
	{CategoryLongS, "ourfelves_ourselves", `(?i)\bourfelves\b`, "ourselves"},
	{CategoryLongS, "fufficient_sufficient", `(?i)\bfufficient\b`, "sufficient"},
	{CategoryLongS, "fuccefsful_successful", `(?i)\bfuccefsful\b`, "successful"},
	{CategoryLongS, "fuccefs_success", `(?i)\bfuccefs\b`, "success"},
	{CategoryLongS, "necefsary_necessary", `(?i)\bnecefsary\b`, "necessary"},
	{CategoryLongS, "poffible_possible", `(?i)\bpoffible\b`, "possible"},
	{CategoryLongS, "impoffible_impossible", `(?i)\bimpoffible\b`, "impossible"},
	{CategoryLongS, "poffefs_possess", `(?i)\bpoffefs\b`, "possess"},
	{CategoryLongS, "poffeffion_possession", `(?i)\bpoffeffion\b`, "possession"},
	{CategoryLongS, "paffage_passage", `(?i)\bpaffage\b`, "passage"},
	{CategoryLongS, "paffed_passed", `(?i)\bpaffed\b`, "passed"},
	{CategoryLongS, "pafs_pass", `(?i)\bpafs\b`, "pass"},
	{CategoryLongS, "clafses_classes", `(?i)\bclafses\b`, "classes"},
	{CategoryLongS, "clafs_class", `(?i)\bclafs\b`, "class"},
	{CategoryLongS, "mafs_mass", `(?i)\bmafs\b`, "mass"},
	{CategoryLongS, "lefs_less", `(?i)\blefs\b`, "less"},
	{CategoryLongS, "unlefs_unless", `(?i)\bunlefs\b`, "unless"},
	{CategoryLongS, "bufinefs_business", `(?i)\bbufinefs\b`, "business"},

	// -- li_h_confusion: OCR reading "h" as "li" (or the reverse gap) --
	{CategoryLiHConfuse, "tbe_the", `(?i)\btbe\b`, "the"},
	{CategoryLiHConfuse, "tlie_the", `(?i)\btlie\b`, "the"},
	{CategoryLiHConfuse, "tiie_the", `(?i)\btiie\b`, "the"},
	{CategoryLiHConfuse, "tbc_the", `(?i)\btbc\b`, "the"},
	{CategoryLiHConfuse, "ihe_the", `(?i)\bihe\b`, "the"},
	{CategoryLiHConfuse, "tne_the", `(?i)\btne\b`, "the"},
	{CategoryLiHConfuse, "thc_the", `(?i)\bthc\b`, "the"},
	{CategoryLiHConfuse, "llie_the", `(?i)\bllie\b`, "the"},
	{CategoryLiHConfuse, "llic_the", `(?i)\bllic\b`, "the"},
	{CategoryLiHConfuse, "llio_the", `(?i)\bllio\b`, "the"},
	{CategoryLiHConfuse, "tke_the", `(?i)\btke\b`, "the"},
	{CategoryLiHConfuse, "tbis_this", `(?i)\btbis\b`, "this"},
	{CategoryLiHConfuse, "thia_this", `(?i)\bthia\b`, "this"},
	{CategoryLiHConfuse, "tliis_this", `(?i)\btliis\b`, "this"},
	{CategoryLiHConfuse, "tliia_this", `(?i)\btliia\b`, "this"},
	{CategoryLiHConfuse, "tbat_that", `(?i)\btbat\b`, "that"},
	{CategoryLiHConfuse, "tliat_that", `(?i)\btliat\b`, "that"},
	{CategoryLiHConfuse, "tlmt_that", `(?i)\btlmt\b`, "that"},
	{CategoryLiHConfuse, "thnt_that", `(?i)\bthnt\b`, "that"},
	{CategoryLiHConfuse, "lliat_that", `(?i)\blliat\b`, "that"},
	{CategoryLiHConfuse, "wbich_which", `(?i)\bwbich\b`, "which"},
	{CategoryLiHConfuse, "whicb_which", `(?i)\bwhicb\b`, "which"},
	{CategoryLiHConfuse, "wliich_which", `(?i)\bwliich\b`, "which"},
	{CategoryLiHConfuse, "wliicli_which", `(?i)\bwliicli\b`, "which"},
	{CategoryLiHConfuse, "wliat_what", `(?i)\bwliat\b`, "what"},
	{CategoryLiHConfuse, "wlmt_what", `(?i)\bwlmt\b`, "what"},
	{CategoryLiHConfuse, "wlien_when", `(?i)\bwlien\b`, "when"},
	{CategoryLiHConfuse, "wben_when", `(?i)\bwben\b`, "when"},
	{CategoryLiHConfuse, "wliere_where", `(?i)\bwliere\b`, "where"},
	{CategoryLiHConfuse, "wbere_where", `(?i)\bwbere\b`, "where"},
	{CategoryLiHConfuse, "wliile_while", `(?i)\bwliile\b`, "while"},
	{CategoryLiHConfuse, "wbile_while", `(?i)\bwbile\b`, "while"},
	{CategoryLiHConfuse, "wlio_who", `(?i)\bwlio\b`, "who"},
	{CategoryLiHConfuse, "wliose_whose", `(?i)\bwliose\b`, "whose"},
	{CategoryLiHConfuse, "wliether_whether", `(?i)\bwliether\b`, "whether"},
	{CategoryLiHConfuse, "wliole_whole", `(?i)\bwliole\b`, "whole"},
	{CategoryLiHConfuse, "wliom_whom", `(?i)\bwliom\b`, "whom"},
	{CategoryLiHConfuse, "liim_him", `(?i)\bliim\b`, "him"},
	{CategoryLiHConfuse, "hirn_him", `(?i)\bhirn\b`, "him"},
	{CategoryLiHConfuse, "liis_his", `(?i)\bliis\b`, "his"},
	{CategoryLiHConfuse, "hia_his", `(?i)\bhia\b`, "his"},
	{CategoryLiHConfuse, "lier_her", `(?i)\blier\b`, "her"},
	{CategoryLiHConfuse, "slie_she", `(?i)\bslie\b`, "she"},
	{CategoryLiHConfuse, "tliey_they", `(?i)\btliey\b`, "they"},
	{CategoryLiHConfuse, "tbey_they", `(?i)\btbey\b`, "they"},
	{CategoryLiHConfuse, "lliey_they", `(?i)\blliey\b`, "they"},
	{CategoryLiHConfuse, "tbeir_their", `(?i)\btbeir\b`, "their"},
	{CategoryLiHConfuse, "tlieir_their", `(?i)\btlieir\b`, "their"},
	{CategoryLiHConfuse, "tbem_them", `(?i)\btbem\b`, "them"},
	{CategoryLiHConfuse, "tliem_them", `(?i)\btliem\b`, "them"},
	{CategoryLiHConfuse, "tben_then", `(?i)\btben\b`, "then"},
	{CategoryLiHConfuse, "tlien_then", `(?i)\btlien\b`, "then"},
	{CategoryLiHConfuse, "tbere_there", `(?i)\btbere\b`, "there"},
	{CategoryLiHConfuse, "tliere_there", `(?i)\btliere\b`, "there"},
	{CategoryLiHConfuse, "lliere_there", `(?i)\blliere\b`, "there"},
	{CategoryLiHConfuse, "tbese_these", `(?i)\btbese\b`, "these"},
	{CategoryLiHConfuse, "tliese_these", `(?i)\btliese\b`, "these"},
	{CategoryLiHConfuse, "tbose_those", `(?i)\btbose\b`, "those"},
	{CategoryLiHConfuse, "tliose_those", `(?i)\btliose\b`, "those"},
	{CategoryLiHConfuse, "tliough_though", `(?i)\btliough\b`, "though"},
	{CategoryLiHConfuse, "tlirough_through", `(?i)\btlirough\b`, "through"},
	{CategoryLiHConfuse, "tliink_think", `(?i)\btliink\b`, "think"},
	{CategoryLiHConfuse, "tliing_thing", `(?i)\btliing\b`, "thing"},
	{CategoryLiHConfuse, "tliings_things", `(?i)\btliings\b`, "things"},
	{CategoryLiHConfuse, "notliing_nothing", `(?i)\bnotliing\b`, "nothing"},
	{CategoryLiHConfuse, "sometliing_something", `(?i)\bsometliing\b`, "something"},
	{CategoryLiHConfuse, "everytliing_everything", `(?i)\beverytliing\b`, "everything"},
	{CategoryLiHConfuse, "anytliing_anything", `(?i)\banytliing\b`, "anything"},
	{CategoryLiHConfuse, "otber_other", `(?i)\botber\b`, "other"},
	{CategoryLiHConfuse, "otlier_other", `(?i)\botlier\b`, "other"},
	{CategoryLiHConfuse, "witb_with", `(?i)\bwitb\b`, "with"},
	{CategoryLiHConfuse, "witli_with", `(?i)\bwitli\b`, "with"},
	{CategoryLiHConfuse, "bave_have", `(?i)\bbave\b`, "have"},
	{CategoryLiHConfuse, "liave_have", `(?i)\bliave\b`, "have"},
	{CategoryLiHConfuse, "liaving_having", `(?i)\bliaving\b`, "having"},
	{CategoryLiHConfuse, "liead_head", `(?i)\bliead\b`, "head"},
	{CategoryLiHConfuse, "lieart_heart", `(?i)\blieart\b`, "heart"},
	{CategoryLiHConfuse, "liand_hand", `(?i)\bliand\b`, "hand"},
	{CategoryLiHConfuse, "liouse_house", `(?i)\bliouse\b`, "house"},
	{CategoryLiHConfuse, "liow_how", `(?i)\bliow\b`, "how"},
	{CategoryLiHConfuse, "liope_hope", `(?i)\bliope\b`, "hope"},
	{CategoryLiHConfuse, "liere_here", `(?i)\bliere\b`, "here"},
	{CategoryLiHConfuse, "liigh_high", `(?i)\bliigh\b`, "high"},
	{CategoryLiHConfuse, "liiglier_higher", `(?i)\bliiglier\b`, "higher"},
	{CategoryLiHConfuse, "liigliest_highest", `(?i)\bliigliest\b`, "highest"},
	{CategoryLiHConfuse, "liistory_history", `(?i)\bliistory\b`, "history"},
	{CategoryLiHConfuse, "lialf_half", `(?i)\blialf\b`, "half"},
	{CategoryLiHConfuse, "liold_hold", `(?i)\bliold\b`, "hold"},
	{CategoryLiHConfuse, "lioly_holy", `(?i)\blioly\b`, "holy"},
	{CategoryLiHConfuse, "lionor_honor", `(?i)\blionor\b`, "honor"},
	{CategoryLiHConfuse, "lionour_honour", `(?i)\blionour\b`, "honour"},
	{CategoryLiHConfuse, "cliild_child", `(?i)\bcliild\b`, "child"},
	{CategoryLiHConfuse, "cliildren_children", `(?i)\bcliildren\b`, "children"},
	{CategoryLiHConfuse, "cliief_chief", `(?i)\bcliief\b`, "chief"},
	{CategoryLiHConfuse, "cliurch_church", `(?i)\bcliurch\b`, "church"},
	{CategoryLiHConfuse, "sucb_such", `(?i)\bsucb\b`, "such"},
	{CategoryLiHConfuse, "sucli_such", `(?i)\bsucli\b`, "such"},
	{CategoryLiHConfuse, "snch_such", `(?i)\bsnch\b`, "such"},

	// -- rn_m_confusion: OCR merging/splitting "rn" and "m" --
	{CategoryRNMConfuse, "rnay_may", `(?i)\brnay\b`, "may"},
	{CategoryRNMConfuse, "rnuch_much", `(?i)\brnuch\b`, "much"},
	{CategoryRNMConfuse, "rnore_more", `(?i)\brnore\b`, "more"},
	{CategoryRNMConfuse, "sarne_same", `(?i)\bsarne\b`, "same"},
	{CategoryRNMConfuse, "tirne_time", `(?i)\btirne\b`, "time"},
	{CategoryRNMConfuse, "narne_name", `(?i)\bnarne\b`, "name"},
	{CategoryRNMConfuse, "corne_come", `(?i)\bcorne\b`, "come"},
	{CategoryRNMConfuse, "conntry_country", `(?i)\bconntry\b`, "country"},
	{CategoryRNMConfuse, "hnndred_hundred", `(?i)\bhnndred\b`, "hundred"},
	{CategoryRNMConfuse, "frorn_from", `(?i)\bfrorn\b`, "from"},
	{CategoryRNMConfuse, "mnch_much", `(?i)\bmnch\b`, "much"},
	{CategoryRNMConfuse, "mnst_must", `(?i)\bmnst\b`, "must"},
	{CategoryRNMConfuse, "thns_thus", `(?i)\bthns\b`, "thus"},

	// -- ll_U_confusion: double-l misread as capital U --
	{CategoryLLUConfuse, "wiU_will", `(?i)\bwiU\b`, "will"},
	{CategoryLLUConfuse, "weU_well", `(?i)\bweU\b`, "well"},
	{CategoryLLUConfuse, "fuU_full", `(?i)\bfuU\b`, "full"},
	{CategoryLLUConfuse, "smaU_small", `(?i)\bsmaU\b`, "small"},
	{CategoryLLUConfuse, "stiU_still", `(?i)\bstiU\b`, "still"},
	{CategoryLLUConfuse, "caUed_called", `(?i)\bcaUed\b`, "called"},
	{CategoryLLUConfuse, "caUing_calling", `(?i)\bcaUing\b`, "calling"},
	{CategoryLLUConfuse, "foUow_follow", `(?i)\bfoUow\b`, "follow"},
	{CategoryLLUConfuse, "foUows_follows", `(?i)\bfoUows\b`, "follows"},
	{CategoryLLUConfuse, "foUowing_following", `(?i)\bfoUowing\b`, "following"},
	{CategoryLLUConfuse, "foUowed_followed", `(?i)\bfoUowed\b`, "followed"},
	{CategoryLLUConfuse, "shaU_shall", `(?i)\bshaU\b`, "shall"},
	{CategoryLLUConfuse, "feU_fell", `(?i)\bfeU\b`, "fell"},
	{CategoryLLUConfuse, "teU_tell", `(?i)\bteU\b`, "tell"},
	{CategoryLLUConfuse, "seU_sell", `(?i)\bseU\b`, "sell"},
	{CategoryLLUConfuse, "fiU_fill", `(?i)\bfiU\b`, "fill"},
	{CategoryLLUConfuse, "kiU_kill", `(?i)\bkiU\b`, "kill"},
	{CategoryLLUConfuse, "skiU_skill", `(?i)\bskiU\b`, "skill"},
	{CategoryLLUConfuse, "miU_mill", `(?i)\bmiU\b`, "mill"},
	{CategoryLLUConfuse, "biU_bill", `(?i)\bbiU\b`, "bill"},
	{CategoryLLUConfuse, "hiU_hill", `(?i)\bhiU\b`, "hill"},
	{CategoryLLUConfuse, "tiU_till", `(?i)\btiU\b`, "till"},
	{CategoryLLUConfuse, "puU_pull", `(?i)\bpuU\b`, "pull"},
	{CategoryLLUConfuse, "aU_all", `(?i)\baU\b`, "all"},
	{CategoryLLUConfuse, "baU_ball", `(?i)\bbaU\b`, "ball"},
	{CategoryLLUConfuse, "waU_wall", `(?i)\bwaU\b`, "wall"},
	{CategoryLLUConfuse, "faU_fall", `(?i)\bfaU\b`, "fall"},
	{CategoryLLUConfuse, "caU_call", `(?i)\bcaU\b`, "call"},
	{CategoryLLUConfuse, "taU_tall", `(?i)\btaU\b`, "tall"},
	{CategoryLLUConfuse, "doUars_dollars", `(?i)\bdoUars\b`, "dollars"},
	{CategoryLLUConfuse, "coUege_college", `(?i)\bcoUege\b`, "college"},
	{CategoryLLUConfuse, "coUection_collection", `(?i)\bcoUection\b`, "collection"},
	{CategoryLLUConfuse, "coUected_collected", `(?i)\bcoUected\b`, "collected"},
	{CategoryLLUConfuse, "coUect_collect", `(?i)\bcoUect\b`, "collect"},
	{CategoryLLUConfuse, "exceUent_excellent", `(?i)\bexceUent\b`, "excellent"},
	{CategoryLLUConfuse, "inteUigent_intelligent", `(?i)\binteUigent\b`, "intelligent"},
	{CategoryLLUConfuse, "inteUigence_intelligence", `(?i)\binteUigence\b`, "intelligence"},
	{CategoryLLUConfuse, "pubUc_public", `(?i)\bpubUc\b`, "public"},
	{CategoryLLUConfuse, "engUsh_english", `(?i)\bengUsh\b`, "English"},
	{CategoryLLUConfuse, "heaUh_health", `(?i)\bheaUh\b`, "health"},
	{CategoryLLUConfuse, "litUe_little", `(?i)\blitUe\b`, "little"},
	{CategoryLLUConfuse, "fuUy_fully", `(?i)\bfuUy\b`, "fully"},
	{CategoryLLUConfuse, "feUow_fellow", `(?i)\bfeUow\b`, "fellow"},
	{CategoryLLUConfuse, "parUament_parliament", `(?i)\bparUament\b`, "parliament"},
	{CategoryLLUConfuse, "miUtary_military", `(?i)\bmiUtary\b`, "military"},
	{CategoryLLUConfuse, "mUe_mile", `(?i)\bmUe\b`, "mile"},
	{CategoryLLUConfuse, "mUes_miles", `(?i)\bmUes\b`, "miles"},
	{CategoryLLUConfuse, "poUcy_policy", `(?i)\bpoUcy\b`, "policy"},
	{CategoryLLUConfuse, "appUed_applied", `(?i)\bappUed\b`, "applied"},
	{CategoryLLUConfuse, "appUy_apply", `(?i)\bappUy\b`, "apply"},
	{CategoryLLUConfuse, "appUcation_application", `(?i)\bappUcation\b`, "application"},
	{CategoryLLUConfuse, "appUcations_applications", `(?i)\bappUcations\b`, "applications"},
	{CategoryLLUConfuse, "estabUshed_established", `(?i)\bestabUshed\b`, "established"},
	{CategoryLLUConfuse, "genUeman_gentleman", `(?i)\bgenUeman\b`, "gentleman"},
	{CategoryLLUConfuse, "generaUy_generally", `(?i)\bgeneraUy\b`, "generally"},
	{CategoryLLUConfuse, "aUowed_allowed", `(?i)\baUowed\b`, "allowed"},
	{CategoryLLUConfuse, "aUow_allow", `(?i)\baUow\b`, "allow"},
	{CategoryLLUConfuse, "viUage_village", `(?i)\bviUage\b`, "village"},
	{CategoryLLUConfuse, "viUages_villages", `(?i)\bviUages\b`, "villages"},
	{CategoryLLUConfuse, "whoUy_wholly", `(?i)\bwhoUy\b`, "wholly"},
	{CategoryLLUConfuse, "buUt_built", `(?i)\bbuUt\b`, "built"},
	{CategoryLLUConfuse, "yeUow_yellow", `(?i)\byeUow\b`, "yellow"},
	{CategoryLLUConfuse, "coUonel_colonel", `(?i)\bcoUonel\b`, "colonel"},
	{CategoryLLUConfuse, "beUeved_believed", `(?i)\bbeUeved\b`, "believed"},
	{CategoryLLUConfuse, "beUeve_believe", `(?i)\bbeUeve\b`, "believe"},
	{CategoryLLUConfuse, "beUef_belief", `(?i)\bbeUef\b`, "belief"},
	{CategoryLLUConfuse, "miUions_millions", `(?i)\bmiUions\b`, "millions"},
	{CategoryLLUConfuse, "miUion_million", `(?i)\bmiUion\b`, "million"},
	{CategoryLLUConfuse, "daUy_daily", `(?i)\bdaUy\b`, "daily"},
	{CategoryLLUConfuse, "deUvered_delivered", `(?i)\bdeUvered\b`, "delivered"},
	{CategoryLLUConfuse, "deUver_deliver", `(?i)\bdeUver\b`, "deliver"},
	{CategoryLLUConfuse, "vaUey_valley", `(?i)\bvaUey\b`, "valley"},
	{CategoryLLUConfuse, "vaUeys_valleys", `(?i)\bvaUeys\b`, "valleys"},
	{CategoryLLUConfuse, "kiUed_killed", `(?i)\bkiUed\b`, "killed"},
	{CategoryLLUConfuse, "especiaUy_especially", `(?i)\bespeciaUy\b`, "especially"},
	{CategoryLLUConfuse, "chUdren_children", `(?i)\bchUdren\b`, "children"},
	{CategoryLLUConfuse, "feeUng_feeling", `(?i)\bfeeUng\b`, "feeling"},
	{CategoryLLUConfuse, "feeUngs_feelings", `(?i)\bfeeUngs\b`, "feelings"},
	{CategoryLLUConfuse, "famUy_family", `(?i)\bfamUy\b`, "family"},
	{CategoryLLUConfuse, "famUies_families", `(?i)\bfamUies\b`, "families"},
	{CategoryLLUConfuse, "hoUow_hollow", `(?i)\bhoUow\b`, "hollow"},
	{CategoryLLUConfuse, "faUen_fallen", `(?i)\bfaUen\b`, "fallen"},
	{CategoryLLUConfuse, "faUing_falling", `(?i)\bfaUing\b`, "falling"},
	{CategoryLLUConfuse, "poUtics_politics", `(?i)\bpoUtics\b`, "politics"},
	{CategoryLLUConfuse, "poUtical_political", `(?i)\bpoUtical\b`, "political"},
	{CategoryLLUConfuse, "rebeUion_rebellion", `(?i)\brebeUion\b`, "rebellion"},
	{CategoryLLUConfuse, "aUies_allies", `(?i)\baUies\b`, "allies"},
	{CategoryLLUConfuse, "aUied_allied", `(?i)\baUied\b`, "allied"},
	{CategoryLLUConfuse, "equaUy_equally", `(?i)\bequaUy\b`, "equally"},
	{CategoryLLUConfuse, "usuaUy_usually", `(?i)\busuaUy\b`, "usually"},
	{CategoryLLUConfuse, "quaUty_quality", `(?i)\bquaUty\b`, "quality"},
	{CategoryLLUConfuse, "raUroad_railroad", `(?i)\braUroad\b`, "railroad"},
	{CategoryLLUConfuse, "originaUy_originally", `(?i)\boriginaUy\b`, "originally"},
	{CategoryLLUConfuse, "brUiant_brilliant", `(?i)\bbrUiant\b`, "brilliant"},
	{CategoryLLUConfuse, "repubUc_republic", `(?i)\brepubUc\b`, "republic"},
	{CategoryLLUConfuse, "cathoUc_catholic", `(?i)\bcathoUc\b`, "catholic"},
	{CategoryLLUConfuse, "chanceUor_chancellor", `(?i)\bchanceUor\b`, "chancellor"},
	{CategoryLLUConfuse, "probaUy_probably", `(?i)\bprobaUy\b`, "probably"},
	{CategoryLLUConfuse, "buUding_building", `(?i)\bbuUding\b`, "building"},
	{CategoryLLUConfuse, "buUdings_buildings", `(?i)\bbuUdings\b`, "buildings"},
	{CategoryLLUConfuse, "entiUed_entitled", `(?i)\bentiUed\b`, "entitled"},
	{CategoryLLUConfuse, "wooUen_woollen", `(?i)\bwooUen\b`, "woollen"},
	{CategoryLLUConfuse, "metropoUtan_metropolitan", `(?i)\bmetropoUtan\b`, "metropolitan"},
	{CategoryLLUConfuse, "itaUan_italian", `(?i)\bitaUan\b`, "Italian"},
	{CategoryLLUConfuse, "iUustrated_illustrated", `(?i)\biUustrated\b`, "illustrated"},
	{CategoryLLUConfuse, "iUustration_illustration", `(?i)\biUustration\b`, "illustration"},
	{CategoryLLUConfuse, "veUum_vellum", `(?i)\bveUum\b`, "vellum"},
	{CategoryLLUConfuse, "foUo_folio", `(?i)\bfoUo\b`, "folio"},
	{CategoryLLUConfuse, "william_name", `\bWiUiam\b`, "William"},
	{CategoryLLUConfuse, "wilUam_name", `\bWilUam\b`, "William"},
	{CategoryLLUConfuse, "williams_name", `\bWiUiams\b`, "Williams"},
	{CategoryLLUConfuse, "philip_name", `\bPhiUip\b`, "Philip"},
	{CategoryLLUConfuse, "philippine_name", `\bPhiUppine\b`, "Philippine"},
	{CategoryLLUConfuse, "philippines_name", `\bPhiUppines\b`, "Philippines"},
	{CategoryLLUConfuse, "dublin_name", `\bDubUn\b`, "Dublin"},
	{CategoryLLUConfuse, "berlin_name", `\bBerUn\b`, "Berlin"},
	{CategoryLLUConfuse, "apollo_name", `\bApoUo\b`, "Apollo"},
	{CategoryLLUConfuse, "illinois_name", `\blUinois\b`, "Illinois"},
	{CategoryLLUConfuse, "carolina_name", `\bCaroUna\b`, "Carolina"},
	{CategoryLLUConfuse, "nashville_name", `\bNashviUe\b`, "Nashville"},
	{CategoryLLUConfuse, "holland_name", `\bHoUand\b`, "Holland"},
	{CategoryLLUConfuse, "villa_name", `\bViUa\b`, "Villa"},

	// -- ligature: ligature glyphs decomposed to their letter pairs --
	{CategoryLigature, "ligature_fi", `ﬁ`, "fi"},
	{CategoryLigature, "ligature_fl", `ﬂ`, "fl"},
	{CategoryLigature, "ligature_ff", `ﬀ`, "ff"},
	{CategoryLigature, "ligature_ffi", `ﬃ`, "ffi"},
	{CategoryLigature, "ligature_ffl", `ﬄ`, "ffl"},
	{CategoryLigature, "oflice_office", `(?i)\boflSce\b`, "office"},
	{CategoryLigature, "oflicer_officer", `(?i)\boflScer\b`, "officer"},
	{CategoryLigature, "oflicers_officers", `(?i)\boflScers\b`, "officers"},
	{CategoryLigature, "oflicial_official", `(?i)\boflScial\b`, "official"},
	{CategoryLigature, "difTerent_different", `(?i)\bdifTerent\b`, "different"},
	{CategoryLigature, "afTair_affair", `(?i)\bafTair\b`, "affair"},
	{CategoryLigature, "afTairs_affairs", `(?i)\bafTairs\b`, "affairs"},
	{CategoryLigature, "afTect_affect", `(?i)\bafTect\b`, "affect"},
	{CategoryLigature, "efTect_effect", `(?i)\befTect\b`, "effect"},
	{CategoryLigature, "efTects_effects", `(?i)\befTects\b`, "effects"},

	// -- word_join: common multi-word OCR splits/merges --
	{CategoryWordJoin, "and_arid", `(?i)\barid\b`, "and"},
	{CategoryWordJoin, "and_aud", `(?i)\baud\b`, "and"},
	{CategoryWordJoin, "and_nnd", `(?i)\bnnd\b`, "and"},
	{CategoryWordJoin, "and_aiid", `(?i)\baiid\b`, "and"},
	{CategoryWordJoin, "been_boen", `(?i)\bboen\b`, "been"},
	{CategoryWordJoin, "were_wero", `(?i)\bwero\b`, "were"},
	{CategoryWordJoin, "would_wonld", `(?i)\bwonld\b`, "would"},
	{CategoryWordJoin, "would_wouid", `(?i)\bwouid\b`, "would"},
	{CategoryWordJoin, "could_conld", `(?i)\bconld\b`, "could"},
	{CategoryWordJoin, "could_couid", `(?i)\bcouid\b`, "could"},
	{CategoryWordJoin, "should_sbould", `(?i)\bsbould\b`, "should"},
	{CategoryWordJoin, "should_shouid", `(?i)\bshouid\b`, "should"},
	{CategoryWordJoin, "should_sliould", `(?i)\bsliould\b`, "should"},
	{CategoryWordJoin, "being_beiug", `(?i)\bbeiug\b`, "being"},
	{CategoryWordJoin, "made_mado", `(?i)\bmado\b`, "made"},
	{CategoryWordJoin, "upon_npon", `(?i)\bnpon\b`, "upon"},
	{CategoryWordJoin, "some_somo", `(?i)\bsomo\b`, "some"},
	{CategoryWordJoin, "very_verv", `(?i)\bverv\b`, "very"},
	{CategoryWordJoin, "first_llrst", `(?i)\bllrst\b`, "first"},
	{CategoryWordJoin, "still_ftill", `(?i)\bftill\b`, "still"},
	{CategoryWordJoin, "hyphen_join", `([a-z])-\s*\n\s*([a-z])`, "$1$2"},

	// -- watermark: Google-digitization glyph corruption --
	{CategoryWatermark, "google_vjooqic", `(?i)\bVjOOQIC\b`, ""},
	{CategoryWatermark, "google_vjooqlc", `(?i)\bVjOOQLC\b`, ""},
	{CategoryWatermark, "google_vjooq", `(?i)\bVjOOQ\b`, ""},
	{CategoryWatermark, "google_ljooqic", `(?i)\bLjOOQIC\b`, ""},
	{CategoryWatermark, "google_ljooq", `(?i)\bLjOOQ\b`, ""},
	{CategoryWatermark, "google_lioolc", `(?i)\bLiOOQLC\b`, ""},
	{CategoryWatermark, "google_cjooqic", `(?i)\bCjOOQIC\b`, ""},
	{CategoryWatermark, "google_cjooqlc", `(?i)\bCjOOQlC\b`, ""},
	{CategoryWatermark, "google_cjooq", `(?i)\bCjOOQ\b`, ""},
	{CategoryWatermark, "google_byvjooqlc", `(?i)\bbyVjOOQlC\b`, ""},
	{CategoryWatermark, "google_byvrrooqlc", `(?i)\bbyVrrOOQlC\b`, ""},
	{CategoryWatermark, "google_bycjooqlc", `(?i)\bbyCjOOQlC\b`, ""},
	{CategoryWatermark, "google_hygoogic", `(?i)\bhyGoogIc\b`, ""},
	{CategoryWatermark, "google_bygoogk", `(?i)\bbyGoogk\b`, ""},
	{CategoryWatermark, "google_bygoogle", `(?i)\bbyGoogle\b`, ""},
	{CategoryWatermark, "google_dbygoogle", `(?i)\bdbyGoogle\b`, ""},
	{CategoryWatermark, "google_googlc", `(?i)\bGoOglc\b`, ""},
	{CategoryWatermark, "google_googxt", `(?i)\bGoogXt\b`, ""},
	{CategoryWatermark, "google_ooglc", `(?i)\bOOglC\b`, ""},
	{CategoryWatermark, "google_lioolc2", `(?i)\bLiOOQ\b`, ""},
	{CategoryWatermark, "google_vjock", `(?i)\bVjOCK\b`, ""},
	{CategoryWatermark, "google_digitizedbygooglc", `(?i)\bDigiLizedbyGoOglc\b`, ""},
	{CategoryWatermark, "google_digitized_by_corrupt", `(?i)Digitized\s+by\s+[VLC]j?OOQ(?:IC|LC|lC)`, ""},
	{CategoryWatermark, "google_digitized_by", `(?i)Digitized\s+by\s+Google`, ""},

	// -- anachronism: single-token modern intrusions, kept alongside the
	//    richer region filter in internal/anachronism for multi-word forms --
	{CategoryAnachronism, "google_word", `(?i)\bgoogle\b`, ""},
	{CategoryAnachronism, "internet_word", `(?i)\binternet\b`, ""},
	{CategoryAnachronism, "website_word", `(?i)\bwebsite\b`, ""},

	// -- other: repeated-letter and short noise artifacts --
	{CategoryOther, "repeat_AAA", `(?i)\bAAA+\b`, ""},
	{CategoryOther, "repeat_BBB", `(?i)\bBBB+\b`, ""},
	{CategoryOther, "repeat_DDD", `(?i)\bDDD+\b`, ""},
	{CategoryOther, "repeat_EEE", `(?i)\bEEE+\b`, ""},
	{CategoryOther, "repeat_FFF", `(?i)\bFFF+\b`, ""},
	{CategoryOther, "repeat_GGG", `(?i)\bGGG+\b`, ""},
	{CategoryOther, "repeat_HHH", `(?i)\bHHH+\b`, ""},
	{CategoryOther, "repeat_JJJ", `(?i)\bJJJ+\b`, ""},
	{CategoryOther, "repeat_KKK", `(?i)\bKKK+\b`, ""},
	{CategoryOther, "repeat_NNN", `(?i)\bNNN+\b`, ""},
	{CategoryOther, "repeat_OOO", `(?i)\bOOO+\b`, ""},
	{CategoryOther, "repeat_PPP", `(?i)\bPPP+\b`, ""},
	{CategoryOther, "repeat_QQQ", `(?i)\bQQQ+\b`, ""},
	{CategoryOther, "repeat_RRR", `(?i)\bRRR+\b`, ""},
	{CategoryOther, "repeat_SSS", `(?i)\bSSS+\b`, ""},
	{CategoryOther, "repeat_TTT", `(?i)\bTTT+\b`, ""},
	{CategoryOther, "repeat_UUU", `(?i)\bUUU+\b`, ""},
	{CategoryOther, "repeat_WWW", `(?i)\bWWW+\b`, ""},
	{CategoryOther, "repeat_YYY", `(?i)\bYYY+\b`, ""},
	{CategoryOther, "repeat_ZZZ", `(?i)\bZZZ+\b`, ""},
	{CategoryOther, "noise_1a", `(?i)\b[I1]A\b`, ""},
	{CategoryOther, "noise_1h", `(?i)\b[I1]H\b`, ""},
}

// contextEntries are historically-ambiguous forms tracked for audit only.
// They must never be auto-corrected; see SPEC_FULL.md Design Notes.
var contextEntries = []ContextEntry{
	{"lie_to_he", `(?i)\blie\b`, "he"},
	{"publick", `(?i)\bpublick\b`, "public"},
	{"untill", `(?i)\buntill\b`, "until"},
	{"chuse", `(?i)\bchuse\b`, "choose"},
	{"shew", `(?i)\bshew\b`, "show"},
	{"connexion", `(?i)\bconnexion\b`, "connection"},
	{"horne_surname", `(?i)\bhorne\b`, "home"},
	{"HaUe_ambiguous", `(?i)\bhaUe\b`, "have/halle/hall"},
}
